package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/Technical-1/etb-cli/internal/model"
	"github.com/Technical-1/etb-cli/internal/util"
)

// syncFiles moves the listed files between the data dir and S3. Every file
// lives under the "data/" prefix in the bucket.
func syncFiles(config model.Config, direction string, fileList []string) error {
	s3Client, err := util.NewS3Client(config)
	if err != nil {
		return fmt.Errorf("❌ Failed to initialize S3 client: %w", err)
	}

	for _, file := range fileList {
		localPath := filepath.Join(config.DataDir, file)
		s3Key := "data/" + file

		if direction == "push" {
			if err := util.UploadToS3(s3Client, config.Sync.Bucket, localPath, s3Key); err != nil {
				return err
			}
		} else {
			if err := util.DownloadFromS3(s3Client, config.Sync.Bucket, s3Key, localPath); err != nil {
				return err
			}
		}
	}
	return nil
}

// SyncWithS3 runs a metadata-diff based sync of the data dir. A lock file
// guards against two syncs running at once.
func SyncWithS3(config model.Config, direction string) error {
	lockPath := filepath.Join(config.DataDir, ".sync.lock")
	if _, err := os.Stat(lockPath); err == nil {
		return fmt.Errorf("❌ Another sync appears to be running (%s exists)", lockPath)
	}
	if err := util.CreateLockFile(lockPath); err != nil {
		return fmt.Errorf("❌ Failed to create lock file: %w", err)
	}
	defer os.Remove(lockPath)

	s3Client, err := util.NewS3Client(config)
	if err != nil {
		return fmt.Errorf("❌ Failed to initialize S3 client: %w", err)
	}

	if direction == "pull" {
		log.Println("🔄 Downloading metadata from S3...")

		remoteMetadata, err := util.DownloadMetadataFromS3(s3Client, config)
		if err != nil {
			return fmt.Errorf("❌ Failed to download metadata.json from S3: %w", err)
		}

		localMetadata, _ := util.LoadMetadata(filepath.Join(config.DataDir, "metadata.json"))

		fileList := util.DetectChanges(localMetadata, remoteMetadata, "s3")
		if len(fileList) == 0 {
			log.Println("✅ No changes detected. Everything is up-to-date.")
		} else {
			log.Println("🔄 Downloading changed files from S3...")
			err = syncFiles(config, "pull", fileList)
			if err != nil {
				return fmt.Errorf("❌ Sync failed: %w", err)
			}
		}

		log.Println("🔄 Saving updated metadata...")
		err = util.SaveMetadata(filepath.Join(config.DataDir, "metadata.json"), remoteMetadata)
		if err != nil {
			return fmt.Errorf("❌ Failed to save metadata.json: %w", err)
		}

		log.Println("✅ Sync completed successfully.")
		return nil

	} else if direction == "push" {
		log.Println("🔄 Generating metadata for push...")

		localMetadata, err := util.GenerateMetadata(config.DataDir)
		if err != nil {
			return fmt.Errorf("❌ Failed to generate metadata.json: %w", err)
		}

		err = util.SaveMetadata(filepath.Join(config.DataDir, "metadata.json"), localMetadata)
		if err != nil {
			return fmt.Errorf("❌ Failed to save metadata.json: %w", err)
		}

		remoteMetadata, err := util.DownloadMetadataFromS3(s3Client, config)
		if err != nil {
			return fmt.Errorf("❌ Failed to download metadata.json from S3: %w", err)
		}

		fileList := util.DetectChanges(localMetadata, remoteMetadata, "local")
		if len(fileList) == 0 {
			log.Println("✅ No changes detected. Everything is up-to-date.")
		} else {
			log.Println("🔄 Uploading changed files to S3...")
			err = syncFiles(config, "push", fileList)
			if err != nil {
				return fmt.Errorf("❌ Sync failed: %w", err)
			}
		}

		log.Println("🔄 Uploading metadata to S3...")
		err = util.UploadMetadataToS3(s3Client, config)
		if err != nil {
			return fmt.Errorf("❌ Failed to upload metadata.json: %w", err)
		}

		log.Println("✅ Sync completed successfully.")
		return nil
	}
	return fmt.Errorf("❌ Unknown sync direction: %s", direction)
}

// ShowSyncStatus lists the files that would change on a pull.
func ShowSyncStatus(config model.Config) error {
	s3Client, err := util.NewS3Client(config)
	if err != nil {
		return fmt.Errorf("❌ Failed to initialize S3 client: %w", err)
	}

	localMetadata, _ := util.LoadMetadata(filepath.Join(config.DataDir, "metadata.json"))

	remoteMetadata, err := util.DownloadMetadataFromS3(s3Client, config)
	if err != nil {
		return err
	}

	diff := util.DetectChanges(localMetadata, remoteMetadata, "s3")
	if len(diff) == 0 {
		log.Println("✅ Everything is up-to-date.")
		return nil
	}

	log.Println("📌 Files to be updated from S3:")
	for _, file := range diff {
		log.Println("   -", file)
	}

	return nil
}
