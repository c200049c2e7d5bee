// Package docs holds the documentation topics of the sms command.
//
// The readme page introduces sms and indexes the other topics.
package docs

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed *.md
var pages embed.FS

const (
	// Readme is the topic shown when none is asked for.
	Readme = "readme"
	// All selects every topic but the readme.
	All = "*"
)

// ErrUnknownTopic is returned for a topic without a page.
var ErrUnknownTopic = errors.New("unknown topic")

// GetTopic returns the page of a documentation topic, or every page for All.
func GetTopic(topic string) (string, error) {
	if topic == All {
		topics, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		return GetTopics(topics...)
	}

	page, err := pages.ReadFile(topic + ".md")
	if errors.Is(err, fs.ErrNotExist) {
		topics, _ := GetAllTopics()
		return "", fmt.Errorf("%w %q, try one of: %s", ErrUnknownTopic, topic, strings.Join(topics, ", "))
	}
	if err != nil {
		return "", fmt.Errorf("cannot read topic %q: %w", topic, err)
	}
	return string(page), nil
}

// GetTopics returns the pages of several topics, separated by a horizontal rule.
func GetTopics(topics ...string) (string, error) {
	contents := make([]string, 0, len(topics))
	for _, topic := range topics {
		page, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		contents = append(contents, page)
	}
	return strings.Join(contents, "\n---\n\n"), nil
}

// GetAllTopics returns the sorted names of the topics, the readme excluded.
func GetAllTopics() ([]string, error) {
	files, err := fs.Glob(pages, "*.md")
	if err != nil {
		return nil, err
	}
	topics := make([]string, 0, len(files))
	for _, file := range files {
		if topic := strings.TrimSuffix(file, ".md"); topic != Readme {
			topics = append(topics, topic)
		}
	}
	return topics, nil
}
