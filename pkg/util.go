package pkg

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"time"
)

// PathExists returns whether the given file or directory exists
func PathExists(path string, isDir bool) (bool, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if isDir && !stat.IsDir() {
		return false, fmt.Errorf("%s is not a directory", path)
	}
	if !isDir && stat.IsDir() {
		return false, fmt.Errorf("%s is a directory", path)
	}
	return true, nil
}

// ArchiveFile is one in-memory file of a tar.gz archive.
type ArchiveFile struct {
	Name string
	Data []byte
}

// CompressFiles writes files as a tar.gz stream into w, all stamped with modTime.
func CompressFiles(w io.Writer, modTime time.Time, files ...ArchiveFile) error {
	gzipWriter := gzip.NewWriter(w)
	tarWriter := tar.NewWriter(gzipWriter)

	for _, f := range files {
		header := &tar.Header{
			Typeflag: tar.TypeReg,
			Name:     f.Name,
			Mode:     0o644,
			Size:     int64(len(f.Data)),
			ModTime:  modTime,
		}
		if err := tarWriter.WriteHeader(header); err != nil {
			return fmt.Errorf("tar header [%s]: %w", f.Name, err)
		}
		if _, err := tarWriter.Write(f.Data); err != nil {
			return fmt.Errorf("tar write [%s]: %w", f.Name, err)
		}
	}

	if err := tarWriter.Close(); err != nil {
		return err
	}
	return gzipWriter.Close()
}
