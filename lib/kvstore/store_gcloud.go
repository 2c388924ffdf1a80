package kvstore

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/datastore"
)

const kind = "KeyValue"

type keyValueEntity struct {
	Value string `datastore:",noindex"`
}

type gcloudKV struct {
	client *datastore.Client
}

func newGcloudKV(c context.Context) (*gcloudKV, func(), error) {
	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	client, err := datastore.NewClient(c, projectID)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating datastore-client: %s", err)
	}

	return &gcloudKV{
			client: client,
		}, func() {
			client.Close()
		}, nil
}

func (s *gcloudKV) Get(c context.Context, key string) (string, bool, error) {
	entity := keyValueEntity{}
	err := s.client.Get(c, datastore.NameKey(kind, key, nil), &entity)
	if err == datastore.ErrNoSuchEntity {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("error fetching key %s: %s", key, err)
	}

	return entity.Value, true, nil
}

func (s *gcloudKV) Set(c context.Context, key string, value string) error {
	_, err := s.client.Put(c, datastore.NameKey(kind, key, nil), &keyValueEntity{Value: value})
	if err != nil {
		return fmt.Errorf("error storing key %s: %s", key, err)
	}

	return nil
}

func (s *gcloudKV) Remove(c context.Context, key string) error {
	err := s.client.Delete(c, datastore.NameKey(kind, key, nil))
	if err != nil && err != datastore.ErrNoSuchEntity {
		return fmt.Errorf("error removing key %s: %s", key, err)
	}

	return nil
}
