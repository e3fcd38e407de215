package util

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/Technical-1/etb-cli/internal/model"
)

const metadataS3Key = "data/metadata.json"

// GenerateMetadata walks the data dir and records each file's mtime.
func GenerateMetadata(dir string) (map[string]string, error) {
	metadata := make(map[string]string)

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Printf("⚠️ Failed to access path: %s (%v)", path, err)
			return nil
		}

		if info.IsDir() {
			return nil
		}

		// Lock files and other dotfiles never sync.
		if strings.HasPrefix(info.Name(), ".") {
			return nil
		}

		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			log.Printf("⚠️ Failed to get relative path for: %s (%v)", path, err)
			return nil
		}

		metadata[relPath] = info.ModTime().Format(time.RFC3339)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("❌ Failed to scan directory: %w", err)
	}

	return metadata, nil
}

func SaveMetadata(metadataPath string, metadata map[string]string) error {
	data, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return fmt.Errorf("❌ Failed to marshal metadata.json: %w", err)
	}

	err = os.WriteFile(metadataPath, data, 0644)
	if err != nil {
		return fmt.Errorf("❌ Failed to write metadata.json: %w", err)
	}

	log.Println("✅ metadata.json updated!")
	return nil
}

func LoadMetadata(metadataPath string) (map[string]string, error) {
	data, err := os.ReadFile(metadataPath)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("❌ Failed to read metadata.json: %w", err)
	}

	var metadata map[string]string
	err = json.Unmarshal(data, &metadata)
	if err != nil {
		return nil, fmt.Errorf("❌ Failed to parse metadata.json: %w", err)
	}

	return metadata, nil
}

func UploadMetadataToS3(s3Client *s3.Client, config model.Config) error {
	metadataPath := filepath.Join(config.DataDir, "metadata.json")

	file, err := os.Open(metadataPath)
	if err != nil {
		return fmt.Errorf("❌ Failed to open %s: %w", metadataPath, err)
	}
	defer file.Close()

	log.Printf("🔄 Uploading %s to S3...", metadataS3Key)

	_, err = s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket: aws.String(config.Sync.Bucket),
		Key:    aws.String(metadataS3Key),
		Body:   file,
	})
	if err != nil {
		return fmt.Errorf("❌ Failed to upload %s to S3: %w", metadataS3Key, err)
	}

	log.Printf("✅ %s uploaded to S3!", metadataS3Key)
	return nil
}

func DownloadMetadataFromS3(s3Client *s3.Client, config model.Config) (map[string]string, error) {
	metadataPath := filepath.Join(config.DataDir, "metadata.json")

	resp, err := s3Client.GetObject(context.TODO(), &s3.GetObjectInput{
		Bucket: aws.String(config.Sync.Bucket),
		Key:    aws.String(metadataS3Key),
	})
	if err != nil {
		if isNotFoundErr(err) {
			log.Printf("⚠️ No %s found on S3, returning empty metadata.", metadataS3Key)
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("❌ Failed to download %s from S3: %w", metadataS3Key, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("❌ Failed to read %s from S3: %w", metadataS3Key, err)
	}

	err = os.WriteFile(metadataPath, data, 0644)
	if err != nil {
		return nil, fmt.Errorf("❌ Failed to save %s: %w", metadataPath, err)
	}

	log.Printf("✅ %s downloaded from S3!", metadataS3Key)

	metadata, err := LoadMetadata(metadataPath)
	if err != nil {
		return nil, fmt.Errorf("❌ Failed to load downloaded metadata: %w", err)
	}

	return metadata, nil
}

// DetectChanges compares local and remote metadata and returns the files
// that need syncing. source is "local" for push, "s3" for pull.
func DetectChanges(localMeta, remoteMeta map[string]string, source string) []string {
	var filesToSync []string

	for file, remoteTimeStr := range remoteMeta {
		if file == "metadata.json" {
			continue
		}

		localTimeStr, exists := localMeta[file]

		if !exists {
			if source == "s3" {
				log.Printf("📌 File missing locally, adding to sync (pull): %s", file)
				filesToSync = append(filesToSync, file)
			}
			continue
		}

		remoteTime, err := time.Parse(time.RFC3339, remoteTimeStr)
		if err != nil {
			log.Printf("⚠️ Failed to parse remote timestamp for %s: %v", file, err)
			continue
		}

		localTime, err := time.Parse(time.RFC3339, localTimeStr)
		if err != nil {
			log.Printf("⚠️ Failed to parse local timestamp for %s: %v", file, err)
			continue
		}

		if source == "s3" && remoteTime.After(localTime.Add(1*time.Second)) {
			log.Printf("📌 Newer version on S3, adding to sync (pull): %s", file)
			filesToSync = append(filesToSync, file)
		}

		if source == "local" && localTime.After(remoteTime.Add(1*time.Second)) {
			log.Printf("📌 Newer version locally, adding to sync (push): %s", file)
			filesToSync = append(filesToSync, file)
		}
	}

	if source == "local" {
		for file := range localMeta {
			if file == "metadata.json" {
				continue
			}
			if _, exists := remoteMeta[file]; !exists {
				log.Printf("📌 File missing on S3, adding to sync (push): %s", file)
				filesToSync = append(filesToSync, file)
			}
		}
	}

	return filesToSync
}
