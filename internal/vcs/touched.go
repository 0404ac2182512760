package vcs

import "time"

// LastTouched walks the commit log and returns the most recent author time
// per file path, keyed by the repository-relative path as git reports it.
// Merge commits have empty stats and contribute nothing, matching git's own
// attribution of changes to the non-merge commits that introduced them.
func LastTouched(repoPath string, since *time.Time) (map[string]time.Time, error) {
	repo, err := DefaultOpener().PlainOpenWithDetect(repoPath)
	if err != nil {
		return nil, err
	}

	iter, err := repo.Log(&LogOptions{Since: since})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	touched := make(map[string]time.Time)
	err = iter.ForEach(func(commit Commit) error {
		stats, err := commit.Stats()
		if err != nil {
			return nil
		}
		when := commit.Author().When
		for _, stat := range stats {
			if existing, ok := touched[stat.Name]; !ok || when.After(existing) {
				touched[stat.Name] = when
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return touched, nil
}
