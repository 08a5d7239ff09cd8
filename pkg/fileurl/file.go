package fileurl

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// IsExist determines if the given path exists
// IsExist 判断所给路径是否存在
func IsExist(dst string) bool {
	_, err := os.Stat(dst)
	if err != nil {
		return os.IsExist(err)
	}
	return true
}

// CreatePath creates the parent directory of dst
// CreatePath 创建 dst 的父目录
func CreatePath(dst string, perm os.FileMode) error {
	return os.MkdirAll(filepath.Dir(dst), perm)
}

// GetExePath gets path of current execution file
// GetExePath 获取当前执行文件的路径
func GetExePath() string {
	file, _ := exec.LookPath(os.Args[0])
	path, _ := filepath.Abs(file)
	index := strings.LastIndex(path, string(os.PathSeparator))
	if index < 0 {
		return "."
	}
	return path[:index]
}

// ResolvePath joins a relative path onto root; absolute paths and ":memory:" are kept.
// ResolvePath 将相对路径拼接到 root 下，绝对路径原样返回
func ResolvePath(path string, root string) string {
	if path == "" || strings.HasPrefix(path, ":memory:") || filepath.IsAbs(path) {
		return path
	}
	if root == "" {
		root, _ = os.Getwd()
	}
	return filepath.Join(root, path)
}
