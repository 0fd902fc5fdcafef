package docs

import (
	"bufio"
	"os"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestTopics ensures that the documentation is in sync with the code:
// every topic listed in readme.md exists, and every .md file in the
// package (excluding readme.md itself) is listed in readme.md.
func TestTopics(t *testing.T) {
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)

	for scanner.Scan() {
		line := scanner.Text()
		matches := topicRegex.FindStringSubmatch(line)
		if len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("failed to read readme.md: %v", err)
	}
	slices.Sort(topicsInReadme)

	allTopics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() returned error: %v", err)
	}
	if !slices.Equal(topicsInReadme, allTopics) {
		t.Errorf("topics in readme.md %v do not match topic files %v", topicsInReadme, allTopics)
	}

	for _, topic := range topicsInReadme {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("GetTopic(%q) returned error: %v", topic, err)
		}
	}
}

// TestTopicStructure parses every topic and checks it opens with a level 1
// heading, so that concatenated topics render as separate documents.
func TestTopicStructure(t *testing.T) {
	allTopics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() returned error: %v", err)
	}

	mdParser := goldmark.DefaultParser()
	for _, topic := range allTopics {
		content, err := GetTopic(topic)
		if err != nil {
			t.Errorf("GetTopic(%q) returned error: %v", topic, err)
			continue
		}
		doc := mdParser.Parse(text.NewReader([]byte(content)))
		first := doc.FirstChild()
		heading, ok := first.(*ast.Heading)
		if !ok || heading.Level != 1 {
			t.Errorf("topic %q does not start with a level 1 heading", topic)
		}
	}
}
