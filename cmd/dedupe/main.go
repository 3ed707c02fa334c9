// dedupe removes duplicate blog posts pointing at the same original link.
// The same feed item can show up in both the current-day and historical
// CSVs, producing posts under two date directories; the earliest post wins.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

var linkRegex = regexp.MustCompile(`(?m)^\.\. link: (.+)$`)

func main() {
	dryRun := flag.Bool("n", false, "List duplicates without removing them")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatal("Usage: dedupe [-n] <posts-directory>")
	}

	if err := removeDuplicates(flag.Arg(0), *dryRun); err != nil {
		log.Fatal(err)
	}
}

func removeDuplicates(postsDir string, dryRun bool) error {
	var paths []string
	err := filepath.WalkDir(postsDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // Continue on errors
		}
		if !d.IsDir() && strings.HasSuffix(path, ".md") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking posts directory: %w", err)
	}

	// Date directories sort chronologically, so the first occurrence of a
	// link is the earliest post.
	sort.Strings(paths)

	seen := make(map[string]string)
	removed := 0

	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			log.Printf("Error reading %s: %v", path, err)
			continue
		}

		link := extractLink(string(content))
		if link == "" {
			log.Printf("No link found in %s, skipping", path)
			continue
		}

		first, duplicate := seen[link]
		if !duplicate {
			seen[link] = path
			continue
		}

		log.Printf("Duplicate of %s: %s", first, path)
		if !dryRun {
			if err := os.Remove(path); err != nil {
				log.Printf("Error removing %s: %v", path, err)
				continue
			}
		}
		removed++
	}

	if dryRun {
		log.Printf("Found %d duplicate posts", removed)
	} else {
		log.Printf("Removed %d duplicate posts", removed)
	}
	return nil
}

func extractLink(content string) string {
	matches := linkRegex.FindStringSubmatch(content)
	if len(matches) < 2 {
		return ""
	}
	return strings.TrimSpace(matches[1])
}
