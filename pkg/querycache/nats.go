package querycache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
)

// NATSKVConfig configures the NATS JetStream key-value backend. It lets
// several dashboard processes share one cache.
type NATSKVConfig struct {
	// URLs are the NATS server URLs.
	URLs []string

	// Bucket is the KV bucket name. Created when absent.
	Bucket string

	// CredentialsFile is an optional NATS credentials file path.
	CredentialsFile string

	// TTL is the bucket-level TTL applied when the bucket is created.
	TTL time.Duration
}

// NATSKVBackend stores cache entries in a NATS JetStream key-value bucket.
type NATSKVBackend struct {
	conn *nats.Conn
	kv   nats.KeyValue
}

// NewNATSKVBackend connects to NATS and binds the configured bucket,
// creating it when missing.
func NewNATSKVBackend(config *NATSKVConfig) (*NATSKVBackend, error) {
	if config == nil || len(config.URLs) == 0 {
		return nil, ErrNATSConfigRequired
	}

	var opts []nats.Option
	if config.CredentialsFile != "" {
		opts = append(opts, nats.UserCredentials(config.CredentialsFile))
	}

	conn, err := nats.Connect(strings.Join(config.URLs, ","), opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS: %w", err)
	}

	jetstream, err := conn.JetStream()
	if err != nil {
		conn.Close()

		return nil, fmt.Errorf("opening JetStream context: %w", err)
	}

	bucket := config.Bucket
	if bucket == "" {
		bucket = DefaultNATSBucket
	}

	keyValue, err := jetstream.KeyValue(bucket)
	if errors.Is(err, nats.ErrBucketNotFound) {
		keyValue, err = jetstream.CreateKeyValue(&nats.KeyValueConfig{
			Bucket: bucket,
			TTL:    config.TTL,
		})
	}

	if err != nil {
		conn.Close()

		return nil, fmt.Errorf("binding KV bucket %q: %w", bucket, err)
	}

	return &NATSKVBackend{conn: conn, kv: keyValue}, nil
}

// Get retrieves an entry by key.
func (b *NATSKVBackend) Get(ctx context.Context, key string) (*Entry, error) {
	kvEntry, err := b.kv.Get(sanitizeKey(key))
	if err != nil {
		if errors.Is(err, nats.ErrKeyNotFound) {
			return nil, ErrKeyNotFound
		}

		return nil, fmt.Errorf("getting KV entry: %w", err)
	}

	var entry Entry

	err = json.Unmarshal(kvEntry.Value(), &entry)
	if err != nil {
		return nil, fmt.Errorf("parsing KV entry: %w", err)
	}

	if entry.IsExpired() {
		_ = b.kv.Delete(sanitizeKey(key))

		return nil, ErrEntryExpired
	}

	return &entry, nil
}

// Set stores an entry.
func (b *NATSKVBackend) Set(ctx context.Context, key string, entry *Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding KV entry: %w", err)
	}

	_, err = b.kv.Put(sanitizeKey(key), data)
	if err != nil {
		return fmt.Errorf("storing KV entry: %w", err)
	}

	return nil
}

// Delete removes an entry by key.
func (b *NATSKVBackend) Delete(ctx context.Context, key string) error {
	err := b.kv.Delete(sanitizeKey(key))
	if err != nil && !errors.Is(err, nats.ErrKeyNotFound) {
		return fmt.Errorf("deleting KV entry: %w", err)
	}

	return nil
}

// DeletePrefix removes every entry whose key starts with prefix.
func (b *NATSKVBackend) DeletePrefix(ctx context.Context, prefix string) error {
	keys, err := b.kv.Keys()
	if err != nil {
		if errors.Is(err, nats.ErrNoKeysFound) {
			return nil
		}

		return fmt.Errorf("listing KV keys: %w", err)
	}

	sanitized := sanitizeKey(prefix)

	for _, key := range keys {
		if strings.HasPrefix(key, sanitized) {
			err = b.kv.Delete(key)
			if err != nil && !errors.Is(err, nats.ErrKeyNotFound) {
				return fmt.Errorf("deleting KV entry: %w", err)
			}
		}
	}

	return nil
}

// Clear removes all entries from the bucket.
func (b *NATSKVBackend) Clear(ctx context.Context) error {
	keys, err := b.kv.Keys()
	if err != nil {
		if errors.Is(err, nats.ErrNoKeysFound) {
			return nil
		}

		return fmt.Errorf("listing KV keys: %w", err)
	}

	for _, key := range keys {
		err = b.kv.Delete(key)
		if err != nil && !errors.Is(err, nats.ErrKeyNotFound) {
			return fmt.Errorf("deleting KV entry: %w", err)
		}
	}

	return nil
}

// Has checks whether a live entry exists for the key.
func (b *NATSKVBackend) Has(ctx context.Context, key string) bool {
	entry, err := b.Get(ctx, key)

	return err == nil && entry != nil
}

// Close closes the NATS connection.
func (b *NATSKVBackend) Close() {
	b.conn.Close()
}

// sanitizeKey maps a cache key onto the NATS KV key charset. The mapping
// is character-by-character, so prefixes survive it.
func sanitizeKey(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '=' || r == '.' || r == '/':
			return r
		default:
			return '_'
		}
	}, key)
}
