package util

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

func GetS3Client(u *url.URL) (*minio.Client, error) {

	useSSL := false
	if u.Scheme == "s3+https" {
		useSSL = true
	}

	accessKeyID := os.Getenv("AWS_ACCESS_KEY_ID")
	if accessKeyID == "" {
		return nil, fmt.Errorf("AWS_ACCESS_KEY_ID not set")
	}
	secretAccessKey := os.Getenv("AWS_SECRET_ACCESS_KEY")
	if secretAccessKey == "" {
		return nil, fmt.Errorf("AWS_SECRET_ACCESS_KEY not set")
	}

	mc, err := minio.New(u.Host, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKeyID, secretAccessKey, ""),
		Secure: useSSL,
	})
	return mc, err
}

func GetS3URL(path string) *url.URL {
	if strings.HasPrefix(path, "s3+http://") || strings.HasPrefix(path, "s3+https://") {
		u, err := url.Parse(path)
		if err != nil {
			return nil
		}
		return u
	}
	return nil
}

// SplitS3Path splits an s3 URL path into bucket and key prefix.
func SplitS3Path(u *url.URL) (string, string) {
	tmp := strings.SplitN(u.Path, "/", 3)
	bucket := ""
	if len(tmp) > 1 {
		bucket = tmp[1]
	}
	prefix := ""
	if len(tmp) > 2 {
		prefix = tmp[2]
	}
	return bucket, prefix
}

var contentTypes = map[string]string{
	".js":   "text/javascript",
	".mjs":  "text/javascript",
	".cjs":  "text/javascript",
	".ts":   "text/javascript",
	".json": "application/json",
	".map":  "application/json",
}

// UploadFile pushes one local artifact to an object key, tagging the
// content type for the handful of extensions that matter here.
func UploadFile(ctx context.Context, mc *minio.Client, bucket, key, localPath string) error {
	contentType := "application/octet-stream"
	for ext, ct := range contentTypes {
		if strings.HasSuffix(localPath, ext) {
			contentType = ct
			break
		}
	}
	_, err := mc.FPutObject(ctx, bucket, key, localPath,
		minio.PutObjectOptions{ContentType: contentType})
	return err
}
