package util

import (
	"crypto/sha1"
	"fmt"
	"os"
)

func Exists(filename string) bool {
	_, err := os.Stat(filename)
	return !os.IsNotExist(err)
}

func FileSize(path string) uint64 {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return uint64(fileInfo.Size())
}

var sha1Size int64 = 1024

// QuickSHA1 hashes the first and last KB of a file. Good enough as a
// change detector for build artifacts without reading whole bundles.
func QuickSHA1(path string) (string, error) {

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	finfo, _ := f.Stat()
	s := sha1.New()
	if finfo.Size() < sha1Size*2 {
		buf := make([]byte, finfo.Size())
		f.Read(buf)
		s.Write(buf)
		return fmt.Sprintf("%x", s.Sum(nil)), nil
	}
	buf1 := make([]byte, sha1Size)
	buf2 := make([]byte, sha1Size)
	f.Read(buf1)
	f.Seek(-sha1Size, os.SEEK_END)
	f.Read(buf2)

	s.Write(buf1)
	s.Write(buf2)
	return fmt.Sprintf("%x", s.Sum(nil)), nil
}
