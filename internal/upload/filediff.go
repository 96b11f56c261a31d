package upload

import (
	"log"
	"sort"
	"strings"

	"github.com/codepost-io/codepost-sync/internal/codepost"
)

// LocalFile is one desired file in an upload request.
type LocalFile struct {
	Name      string
	Extension string
	Code      string
}

// contentEqual compares file contents with every newline stripped from both
// sides, so that line-ending differences and trailing newlines introduced by
// the platform never register as a change.
func contentEqual(a, b string) bool {
	return strings.ReplaceAll(a, "\n", "") == strings.ReplaceAll(b, "\n", "")
}

// reconcileFiles drives the submission's remote files toward the desired set,
// as far as the mode allows, and reports whether it changed anything.
//
// Desired files are matched to remote files by (name, extension). A desired
// file whose name exists remotely under a different extension counts as
// missing and is added, not replaced. Replacing a file deletes the old one
// first, which destroys any comments attached to it.
func (e *Engine) reconcileFiles(sub *codepost.Submission, desired []LocalFile, mode Mode) (bool, error) {
	existing := make(map[string]*codepost.File, len(sub.Files))
	for _, fileID := range sub.Files {
		f, err := e.gw.GetFile(fileID)
		if err != nil {
			return false, err
		}
		existing[f.Name] = f
	}

	modified := false

	for _, file := range desired {
		remote, ok := existing[file.Name]
		if ok && remote.Extension == file.Extension {
			if contentEqual(remote.Code, file.Code) {
				continue
			}
			if !mode.UpdateExistingFiles {
				continue
			}

			log.Printf("Replacing contents of %s (all comments on it will be deleted)", file.Name)
			if err := e.gw.DeleteFile(remote.ID); err != nil {
				return modified, err
			}
			if _, err := e.gw.CreateFile(sub.ID, file.Name, file.Extension, file.Code); err != nil {
				return modified, err
			}
			modified = true
		} else {
			if !mode.AddFiles {
				continue
			}

			log.Printf("Adding file %s to submission %d", file.Name, sub.ID)
			if _, err := e.gw.CreateFile(sub.ID, file.Name, file.Extension, file.Code); err != nil {
				return modified, err
			}
			modified = true
		}
	}

	if mode.DeleteUnspecifiedFiles {
		// Matched by name only, unlike the (name, extension) key above.
		desiredNames := make(map[string]bool, len(desired))
		for _, file := range desired {
			desiredNames[file.Name] = true
		}

		names := make([]string, 0, len(existing))
		for name := range existing {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			if desiredNames[name] {
				continue
			}

			log.Printf("Deleting file %s, absent from the upload", name)
			if err := e.gw.DeleteFile(existing[name].ID); err != nil {
				return modified, err
			}
			modified = true
		}
	}

	if !modified {
		log.Printf("Nothing to add or update, submission %d left unchanged", sub.ID)
	}

	return modified, nil
}
