// internal/storage/s3.go
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"go-dodge-tejecks/internal/profile"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/vmihailenco/msgpack/v5"
)

// ObjectAPI: та часть клиента S3, которая нужна хранилищу.
type ObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// NewS3Client собирает клиент из стандартной цепочки AWS-конфигурации.
func NewS3Client(ctx context.Context) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return s3.NewFromConfig(cfg), nil
}

// S3Store: облачная таблица рекордов: один msgpack-блоб на игрока.
// При записи побеждает запись с большим TotalPoints или более свежая
// (покупка в магазине уменьшает очки).
type S3Store struct {
	client   ObjectAPI
	bucket   string
	key      string
	playerID string
}

func NewS3Store(client ObjectAPI, bucket, prefix, playerID string) *S3Store {
	return &S3Store{
		client:   client,
		bucket:   bucket,
		key:      prefix + playerID + ".msgpack",
		playerID: playerID,
	}
}

func (s *S3Store) Name() string { return "s3://" + s.bucket + "/" + s.key }

func (s *S3Store) Load(ctx context.Context) (profile.Record, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return profile.Record{}, ErrNotFound
		}
		return profile.Record{}, fmt.Errorf("get %s: %w", s.key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return profile.Record{}, fmt.Errorf("read %s: %w", s.key, err)
	}
	var r profile.Record
	if err := msgpack.Unmarshal(data, &r); err != nil {
		return profile.Record{}, fmt.Errorf("%s: %w: %v", s.key, ErrCorrupt, err)
	}
	return r, nil
}

// Save не перезаписывает удалённую запись, если у неё больше очков и она
// не старше локальной; в этом случае возвращает ErrSkipped.
func (s *S3Store) Save(ctx context.Context, r profile.Record) error {
	if r.PlayerID != s.playerID {
		return fmt.Errorf("s3 store for %s got record of %s", s.playerID, r.PlayerID)
	}
	current, err := s.Load(ctx)
	switch {
	case err == nil:
		if current.TotalPoints > r.TotalPoints && !r.UpdatedAt.After(current.UpdatedAt) {
			return fmt.Errorf("remote %d ahead of local %d: %w", current.TotalPoints, r.TotalPoints, ErrSkipped)
		}
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrCorrupt):
		// перезаписываем
	default:
		return err
	}

	data, err := msgpack.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode progress: %w", err)
	}
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/msgpack"),
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", s.key, err)
	}
	return nil
}
