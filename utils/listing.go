package utils

import (
	billy "github.com/go-git/go-billy/v5"
)

// ShallowListing renders the startup overview of a serving root: the
// root-level files under label, plus the files of one named subdirectory.
// The listing is informational only; a missing subdirectory is skipped.
func ShallowListing(fs billy.Filesystem, label, subdir string) ([]string, error) {
	lines := []string{label + "/"}
	entries, err := fs.ReadDir(".")
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		lines = append(lines, "    "+e.Name())
	}
	if subdir != "" {
		sub, err := fs.ReadDir(subdir)
		if err == nil {
			lines = append(lines, "    "+subdir+"/")
			for _, e := range sub {
				if e.IsDir() {
					continue
				}
				lines = append(lines, "        "+e.Name())
			}
		}
	}
	return lines, nil
}
