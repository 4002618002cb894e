package core

import (
	"io"
	"io/fs"
	"os"

	"github.com/spf13/afero"
)

// HostFs is everything the reconciler needs from the host filesystem.
type HostFs interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
	CopyFile(src, dst string) error
	ReadDir(path string) ([]fs.DirEntry, error)
	Stat(path string) (fs.FileInfo, error)
	// PathExists treats any failure as "does not exist".
	PathExists(path string) bool
}

const defaultFileMode fs.FileMode = 0644

type DefaultLocalFs struct {
}

var defaultFs *DefaultLocalFs

func GetDefaultLocalFs() *DefaultLocalFs {
	if defaultFs == nil {
		defaultFs = &DefaultLocalFs{}
	}

	return defaultFs
}

func (d *DefaultLocalFs) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile truncates and rewrites path. An existing file keeps its mode.
func (d *DefaultLocalFs) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, defaultFileMode)
}

func (d *DefaultLocalFs) CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Sync(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func (d *DefaultLocalFs) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}

func (d *DefaultLocalFs) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

func (d *DefaultLocalFs) PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// AferoFs adapts an afero filesystem. With afero.NewMemMapFs it is the
// in-memory host used by tests.
type AferoFs struct {
	fs afero.Fs
}

func NewAferoFs(fs afero.Fs) *AferoFs {
	return &AferoFs{fs: fs}
}

func NewMemFs() *AferoFs {
	return NewAferoFs(afero.NewMemMapFs())
}

func (a *AferoFs) Fs() afero.Fs {
	return a.fs
}

func (a *AferoFs) ReadFile(path string) ([]byte, error) {
	info, err := a.fs.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: path, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(a.fs, path)
}

func (a *AferoFs) WriteFile(path string, data []byte) error {
	return afero.WriteFile(a.fs, path, data, defaultFileMode)
}

func (a *AferoFs) CopyFile(src, dst string) error {
	info, err := a.fs.Stat(src)
	if err != nil {
		return err
	}
	data, err := afero.ReadFile(a.fs, src)
	if err != nil {
		return err
	}
	return afero.WriteFile(a.fs, dst, data, info.Mode().Perm())
}

func (a *AferoFs) ReadDir(path string) ([]fs.DirEntry, error) {
	infos, err := afero.ReadDir(a.fs, path)
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = fs.FileInfoToDirEntry(info)
	}
	return entries, nil
}

func (a *AferoFs) Stat(path string) (fs.FileInfo, error) {
	return a.fs.Stat(path)
}

func (a *AferoFs) PathExists(path string) bool {
	ok, err := afero.Exists(a.fs, path)
	return err == nil && ok
}
