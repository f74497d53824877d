// Package config loads the feed source list for a batch run.
// Sources are operator-maintained configuration, not crawl output, so they
// live in a YAML file next to the deployment rather than in the database.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/FAFFA-GOLD/ai-news-batch/internal/domain/entity"
)

// sourcesFile is the top-level structure of the sources YAML file:
//
//	sources:
//	  - name: OpenAI News
//	    url: https://openai.com/news/rss.xml
type sourcesFile struct {
	Sources []entity.Source `yaml:"sources"`
}

// LoadSources reads and validates the feed source list from the given YAML
// file. An unreadable or invalid file is an error: the caller treats it as
// fatal because a run without sources has nothing to do.
func LoadSources(path string) ([]entity.Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sources file %s: %w", path, err)
	}

	var file sourcesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse sources file %s: %w", path, err)
	}

	if len(file.Sources) == 0 {
		return nil, fmt.Errorf("sources file %s contains no sources", path)
	}

	seen := make(map[string]bool, len(file.Sources))
	for i, src := range file.Sources {
		if err := src.Validate(); err != nil {
			return nil, fmt.Errorf("sources file %s: source %d (%q): %w", path, i, src.Name, err)
		}
		if seen[src.FeedURL] {
			return nil, fmt.Errorf("sources file %s: duplicate feed URL %q", path, src.FeedURL)
		}
		seen[src.FeedURL] = true
	}

	return file.Sources, nil
}
