//go:build darwin

package path

import "path/filepath"

// AfterGetAbsPath は /var/folders/... と /private/var/folders/... のような同じフォルダを指すパスを実体のパスに揃えます。
func AfterGetAbsPath(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}
