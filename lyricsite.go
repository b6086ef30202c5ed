// Package lyricsite serves a site for searching the web or a local corpus of song lyrics.
package lyricsite
