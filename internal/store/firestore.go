package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/kimjw-dev/moodlens-backend/internal/pkg/errs"
	"github.com/kimjw-dev/moodlens-backend/internal/pkg/logger"
	"github.com/kimjw-dev/moodlens-backend/internal/types"
)

// FirestoreStore keeps analyses under users/{userID}/analyses/{analysisID}.
type FirestoreStore struct {
	client *firestore.Client
	log    *logger.Logger
	now    func() time.Time
}

func NewFirestoreStore(ctx context.Context, projectID, credentialsFile string, log *logger.Logger) (*FirestoreStore, error) {
	storeLog := log.With("service", "FirestoreStore")

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	log.Info("Connecting to Firestore...", "project", projectID)
	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		log.Error("Failed to connect to Firestore", "error", err)
		return nil, errs.Storage("failed to connect to Firestore", err)
	}

	return &FirestoreStore{client: client, log: storeLog, now: time.Now}, nil
}

func (fs *FirestoreStore) Save(ctx context.Context, userID string, record *types.AnalysisRecord) (string, error) {
	if record.AnalysisID == "" {
		record.AnalysisID = NewAnalysisID(fs.now())
	}
	record.UserID = userID
	record.DataSource = SourceFirestore
	record.Version = DocVersion

	docRef := fs.client.Collection("users").Doc(userID).Collection("analyses").Doc(record.AnalysisID)
	if _, err := docRef.Set(ctx, record); err != nil {
		return "", errs.Storage("failed to save analysis to Firestore", err)
	}

	fs.log.Info("Analysis saved to Firestore", "user_id", userID, "analysis_id", record.AnalysisID)
	return record.AnalysisID, nil
}

func (fs *FirestoreStore) History(ctx context.Context, userID string, limit int) ([]types.AnalysisRecord, error) {
	query := fs.client.Collection("users").Doc(userID).Collection("analyses").
		OrderBy("timestamp", firestore.Desc).
		Limit(limit)

	var records []types.AnalysisRecord
	docs := query.Documents(ctx)
	defer docs.Stop()
	for {
		doc, err := docs.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errs.Storage("failed to read analysis history from Firestore", err)
		}
		var record types.AnalysisRecord
		if err := doc.DataTo(&record); err != nil {
			fs.log.Warn("Skipping malformed analysis document", "doc", doc.Ref.ID, "error", err)
			continue
		}
		records = append(records, record)
	}

	fs.log.Debug("History loaded from Firestore", "user_id", userID, "count", len(records))
	return records, nil
}

func (fs *FirestoreStore) Close() error {
	return fs.client.Close()
}
