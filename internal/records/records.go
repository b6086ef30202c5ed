package records

import (
	"encoding/csv"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"

	"github.com/sourcegraph/lyricsite/internal/search/query"
)

// Column names in the source CSV header. They are matched exactly.
const (
	TitleColumn  = "Song"
	ArtistColumn = "Artist"
	YearColumn   = "Year"
	BodyColumn   = "Lyrics"
)

// Record is a single song in the corpus.
type Record struct {
	ID     int    // 1-based position in load order
	Title  string // song title
	Artist string
	Year   int
	Body   string // the lyrics
}

// Store is an immutable, ordered set of records. It is safe for concurrent use.
type Store struct {
	records []Record
}

// LoadError is returned when the source data can't be loaded.
type LoadError struct {
	Path string // source path, if known
	Row  int    // 1-based data row (not counting the header), or 0 if not row-specific
	Err  error
}

func (e *LoadError) Error() string {
	var b strings.Builder
	b.WriteString("load records")
	if e.Path != "" {
		b.WriteString(" from ")
		b.WriteString(e.Path)
	}
	if e.Row > 0 {
		b.WriteString(" (row ")
		b.WriteString(strconv.Itoa(e.Row))
		b.WriteString(")")
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *LoadError) Unwrap() error { return e.Err }

// Open loads the CSV file at path in fs.
func Open(fs http.FileSystem, path string) (*Store, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()
	s, err := Load(f)
	if e, ok := err.(*LoadError); ok {
		e.Path = path
	}
	return s, err
}

// Load reads all records from CSV data. The data is decoded as ISO-8859-1; a header row naming the
// TitleColumn, ArtistColumn, YearColumn, and BodyColumn columns is required.
//
// Quotes inside unquoted fields are kept literally. Rows may have more fields than the header (the
// extra fields are ignored) or fewer (the missing fields are empty).
//
// Loading is all-or-nothing: any malformed row fails the whole load with a *LoadError.
func Load(r io.Reader) (*Store, error) {
	cr := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(r))
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &LoadError{Err: errors.New("missing header row")}
	} else if err != nil {
		return nil, &LoadError{Err: errors.WithMessage(err, "read header")}
	}
	cols, err := columnIndexes(header)
	if err != nil {
		return nil, &LoadError{Err: err}
	}

	var records []Record
	for row := 1; ; row++ {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &LoadError{Row: row, Err: err}
		}
		field := func(i int) string {
			if i < len(fields) {
				return fields[i]
			}
			return ""
		}
		year, err := strconv.Atoi(strings.TrimSpace(field(cols.year)))
		if err != nil {
			return nil, &LoadError{Row: row, Err: errors.WithMessagef(err, "invalid %s", YearColumn)}
		}
		records = append(records, Record{
			ID:     row,
			Title:  field(cols.title),
			Artist: field(cols.artist),
			Year:   year,
			Body:   field(cols.body),
		})
	}
	return &Store{records: records}, nil
}

type columns struct{ title, artist, year, body int }

func columnIndexes(header []string) (columns, error) {
	index := func(name string) (int, error) {
		for i, h := range header {
			if h == name {
				return i, nil
			}
		}
		return 0, errors.Errorf("missing column %q in header", name)
	}
	var (
		c   columns
		err error
	)
	if c.title, err = index(TitleColumn); err != nil {
		return c, err
	}
	if c.artist, err = index(ArtistColumn); err != nil {
		return c, err
	}
	if c.year, err = index(YearColumn); err != nil {
		return c, err
	}
	if c.body, err = index(BodyColumn); err != nil {
		return c, err
	}
	return c, nil
}

// Len returns the number of records.
func (s *Store) Len() int { return len(s.records) }

// All returns all records in load order.
func (s *Store) All() []Record {
	all := make([]Record, len(s.records))
	copy(all, s.records)
	return all
}

// FindByID returns the record with the given ID. It reports false if there is none.
func (s *Store) FindByID(id int) (Record, bool) {
	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// QueryByFilter returns all records whose title, artist, lyrics, or year contain term (ignoring
// case). The term is matched literally. An empty term matches all records.
func (s *Store) QueryByFilter(term string) []Record {
	q := query.Parse(term)

	var matches []Record
	for _, r := range s.records {
		if q.Match(r.Title, r.Artist, r.Body, strconv.Itoa(r.Year)) {
			matches = append(matches, r)
		}
	}
	return matches
}
