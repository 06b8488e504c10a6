package ioutils

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CreateZip writes a deflate-compressed ZIP archive to dst containing the
// named files from srcDir. Each entry is stored under its bare name with
// no directory prefix, in the order given.
//
// On error the partially written dst is removed.
func CreateZip(ctx context.Context, dst, srcDir string, names []string) (err error) {
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(dst)
		}
	}()

	zw := zip.NewWriter(out)
	for _, name := range names {
		if err = ctx.Err(); err != nil {
			zw.Close()
			out.Close()
			return err
		}
		if err = addZipEntry(zw, filepath.Join(srcDir, name), filepath.Base(name)); err != nil {
			zw.Close()
			out.Close()
			return fmt.Errorf("add %s: %w", name, err)
		}
	}

	if err = zw.Close(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func addZipEntry(zw *zip.Writer, path, entryName string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = entryName
	header.Method = zip.Deflate

	w, err := zw.CreateHeader(header)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, f)
	return err
}
