package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/sourcegraph/lyricsite"
	"github.com/sourcegraph/lyricsite/internal/records"
	"github.com/sourcegraph/lyricsite/internal/websearch"
)

func siteFromFlags() (*lyricsite.Site, *lyricsiteConfig, error) {
	// The whole config may be given in an env var (which is useful in containers).
	if configData := os.Getenv("LYRICSITE_CONFIG"); configData != "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, nil, err
		}
		return openSiteFromConfig([]byte(configData), wd)
	}

	paths := filepath.SplitList(*configPath)
	for _, path := range paths {
		data, err := ioutil.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		} else if err != nil {
			return nil, nil, errors.WithMessage(err, "reading lyricsite config file (from -config flag)")
		}
		return openSiteFromConfig(data, filepath.Dir(path))
	}
	return nil, nil, fmt.Errorf("no lyricsite.yaml config file found (search paths: %s)", *configPath)
}

// lyricsiteConfig is the shape of lyricsite.yaml. JSON is also accepted (YAML is a superset of
// JSON).
type lyricsiteConfig struct {
	Data              string `yaml:"data"`      // path to the lyrics CSV file
	Templates         string `yaml:"templates"` // path to the templates dir
	Assets            string `yaml:"assets"`    // path to the assets dir
	BaseURLPath       string `yaml:"baseURLPath"`
	AssetsBaseURLPath string `yaml:"assetsBaseURLPath"`
	Web               struct {
		Endpoint   string        `yaml:"endpoint"`
		MaxResults int           `yaml:"maxResults"`
		Timeout    time.Duration `yaml:"timeout"`
		UserAgent  string        `yaml:"userAgent"`
	} `yaml:"web"`
	Check struct {
		IgnoreURLPattern string `yaml:"ignoreURLPattern"`
	} `yaml:"check"`
}

func defaultConfig() lyricsiteConfig {
	return lyricsiteConfig{
		Data:              "data/lyrics.csv",
		Templates:         "templates",
		Assets:            "assets",
		BaseURLPath:       "/",
		AssetsBaseURLPath: "/assets/",
	}
}

func partialSiteFromConfig(config lyricsiteConfig) (*lyricsite.Site, error) {
	var site lyricsite.Site
	if config.BaseURLPath != "" {
		site.Base = &url.URL{Path: config.BaseURLPath}
	}
	if config.AssetsBaseURLPath != "" {
		site.AssetsBase = &url.URL{Path: config.AssetsBaseURLPath}
	}
	if config.Check.IgnoreURLPattern != "" {
		var err error
		site.CheckIgnoreURLPattern, err = regexp.Compile(config.Check.IgnoreURLPattern)
		if err != nil {
			return nil, err
		}
	}
	if config.Web.MaxResults < 0 {
		return nil, fmt.Errorf("invalid web.maxResults %d (must not be negative)", config.Web.MaxResults)
	}
	site.WebMaxResults = config.Web.MaxResults
	site.Web = websearch.NewDuckDuckGo(websearch.Options{
		Endpoint:  config.Web.Endpoint,
		Timeout:   config.Web.Timeout,
		UserAgent: config.Web.UserAgent,
	})
	return &site, nil
}

// openSiteFromConfig reads the site config and loads the site's records. All file system paths in
// the config are resolved relative to baseDir.
func openSiteFromConfig(configData []byte, baseDir string) (*lyricsite.Site, *lyricsiteConfig, error) {
	config := defaultConfig()
	if err := yaml.UnmarshalStrict(configData, &config); err != nil {
		return nil, nil, errors.WithMessage(err, "reading lyricsite configuration")
	}

	site, err := partialSiteFromConfig(config)
	if err != nil {
		return nil, nil, err
	}

	resolve := func(path string) string {
		if filepath.IsAbs(path) {
			return path
		}
		return filepath.Join(baseDir, path)
	}
	site.Templates = http.Dir(resolve(config.Templates))
	if config.Assets != "" {
		site.Assets = http.Dir(resolve(config.Assets))
	}

	dataPath := resolve(config.Data)
	site.Records, err = records.Open(http.Dir(filepath.Dir(dataPath)), "/"+filepath.Base(dataPath))
	if err != nil {
		return nil, nil, err
	}
	log.Printf("# Loaded %d records from %s", site.Records.Len(), dataPath)

	return site, &config, nil
}
