// Package setup is responsible for setting up components.
package setup

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/matt-dz/receitas/internal/config"
	"github.com/matt-dz/receitas/internal/database"
	mHttp "github.com/matt-dz/receitas/internal/http"
	"github.com/matt-dz/receitas/internal/imagehost"
)

// Database opens the connection pool and applies the schema when the
// database is empty.
func Database(ctx context.Context, conf config.Config) (*database.Database, error) {
	pool, err := pgxpool.New(ctx, conf.Database.ConnString())
	if err != nil {
		return nil, fmt.Errorf("creating database pool: %w", err)
	}

	db := database.NewDatabase(pool)
	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing database: %w", err)
	}

	return db, nil
}

// ImageHost builds the configured media host. When it is the local host it
// is also returned as such, since it serves the stored files itself.
func ImageHost(
	ctx context.Context,
	conf config.Config,
	client *mHttp.HTTP,
	logger *slog.Logger,
) (imagehost.Host, *imagehost.Local, error) {
	switch conf.Images.Host {
	case config.ImageHostCloudinary:
		host, err := Cloudinary(conf.Images.Cloudinary, client)
		if err != nil {
			return nil, nil, err
		}
		return host, nil, nil
	case config.ImageHostS3:
		host, err := S3(ctx, conf.Images.S3, logger)
		if err != nil {
			return nil, nil, err
		}
		return host, nil, nil
	case config.ImageHostLocal:
		host, err := Local(conf)
		if err != nil {
			return nil, nil, err
		}
		return host, host, nil
	default:
		return nil, nil, fmt.Errorf("unknown image host %q", conf.Images.Host)
	}
}

func Cloudinary(conf config.Cloudinary, client *mHttp.HTTP) (*imagehost.Cloudinary, error) {
	if conf.CloudName == "" {
		return nil, missingSetting("CLOUDINARY_CLOUD_NAME", "images.cloudinary.cloud_name")
	}
	if conf.APIKey == "" {
		return nil, missingSetting("CLOUDINARY_API_KEY", "images.cloudinary.api_key")
	}
	if conf.APISecret == "" {
		return nil, missingSetting("CLOUDINARY_API_SECRET", "images.cloudinary.api_secret")
	}
	return imagehost.NewCloudinary(client, imagehost.CloudinaryConfig{
		CloudName: conf.CloudName,
		APIKey:    conf.APIKey,
		APISecret: conf.APISecret,
	}), nil
}

func S3(ctx context.Context, conf config.S3, logger *slog.Logger) (*imagehost.S3, error) {
	if conf.Bucket == "" {
		return nil, missingSetting("S3_BUCKET", "images.s3.bucket")
	}
	if conf.PublicURL == "" {
		return nil, missingSetting("S3_PUBLIC_URL", "images.s3.public_url")
	}
	s3Conf := imagehost.S3Config{
		Endpoint:  conf.Endpoint,
		AccessKey: conf.AccessKey,
		SecretKey: conf.SecretKey,
		Bucket:    conf.Bucket,
		Region:    conf.Region,
		PublicURL: conf.PublicURL,
	}
	client, err := imagehost.NewS3Client(ctx, s3Conf, logger)
	if err != nil {
		return nil, fmt.Errorf("creating s3 client: %w", err)
	}
	return imagehost.NewS3(client, conf.Bucket, conf.PublicURL), nil
}

func Local(conf config.Config) (*imagehost.Local, error) {
	if conf.Images.Fileserver.Volume == "" {
		return nil, missingSetting("FILESERVER_VOLUME", "images.fileserver.volume")
	}
	volume, err := filepath.Abs(conf.Images.Fileserver.Volume)
	if err != nil {
		return nil, fmt.Errorf("creating fileserver path: %w", err)
	}
	return imagehost.NewLocal(volume, conf.Images.Fileserver.URLPrefix, conf.APIBaseURL), nil
}
