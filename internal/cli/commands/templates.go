package commands

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

//go:embed all:templates
var templateFS embed.FS

// copyResult lists template files relative to the target directory.
type copyResult struct {
	Created []string
	Skipped []string
}

// copyTemplate copies an embedded template directory to the target path.
// Existing files are skipped unless force is set.
func copyTemplate(templateName, targetDir string, force bool) (*copyResult, error) {
	root := path.Join("templates", templateName)
	res := &copyResult{}

	err := fs.WalkDir(templateFS, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Calculate relative path from template root
		relPath, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}

		// Skip root directory
		if relPath == "." {
			return nil
		}

		targetPath := filepath.Join(targetDir, relPath)

		if d.IsDir() {
			return os.MkdirAll(targetPath, 0750)
		}

		display := filepath.ToSlash(relPath)
		if !force {
			if _, err := os.Stat(targetPath); err == nil {
				res.Skipped = append(res.Skipped, display)
				return nil
			}
		}

		content, err := templateFS.ReadFile(p)
		if err != nil {
			return err
		}
		if err := os.WriteFile(targetPath, content, 0600); err != nil {
			return err
		}
		res.Created = append(res.Created, display)
		return nil
	})

	return res, err
}

// listTemplateFiles returns all files in a template for display purposes.
func listTemplateFiles(templateName string) ([]string, error) {
	var files []string
	root := path.Join("templates", templateName)

	err := fs.WalkDir(templateFS, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			relPath, _ := filepath.Rel(root, p)
			files = append(files, filepath.ToSlash(relPath))
		}
		return nil
	})

	return files, err
}
