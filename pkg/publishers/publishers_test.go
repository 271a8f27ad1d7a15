package publishers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/samvad-hq/wunderlist-go/internal/domain"
)

func TestLoadRegistryEnabledFilter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "publishers.yaml")
	raw := `
publishers:
  - id: http1
    type: http
    enabled: false
    http:
      url: https://example.com
  - id: http2
    type: HTTP
    http:
      url: " https://example.com/2 "
  - id: topic
    type: sns
    sns:
      topic_arn: arn:aws:sns:eu-west-1:123:changes
      region: eu-west-1
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	enabled := reg.Enabled()
	if len(enabled) != 2 || enabled[0].ID != "http2" || enabled[1].ID != "topic" {
		t.Fatalf("expected http2 and topic enabled, got %#v", enabled)
	}
	if enabled[0].Type != TypeHTTP || enabled[0].HTTP.URL != "https://example.com/2" || enabled[0].HTTP.Method != "POST" {
		t.Fatalf("http config not sanitized: %#v", enabled[0].HTTP)
	}
	if cfg, ok := reg.ByID("topic"); !ok || cfg.SNS.Region != "eu-west-1" {
		t.Fatalf("ByID(topic) = %#v, %v", cfg, ok)
	}
}

func TestLoadRegistryJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "publishers.json")
	raw := `{"publishers":[{"id":"ps","type":"gcp_pubsub","gcp_pubsub":{"project_id":"p","topic":"t"}}]}`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	if all := reg.All(); len(all) != 1 || all[0].GCPPubSub.Topic != "t" {
		t.Fatalf("unexpected registry %#v", all)
	}
}

func TestLoadRegistryRejectsDuplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "publishers.yaml")
	raw := `
publishers:
  - id: a
    type: http
    http:
      url: https://example.com
  - id: a
    type: http
    http:
      url: https://example.com
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := LoadRegistry(path); err == nil {
		t.Fatalf("expected duplicate id error")
	}
}

func TestValidatePublisherConfig(t *testing.T) {
	cases := []PublisherConfig{
		{ID: "h1", Type: TypeHTTP},
		{ID: "q1", Type: TypeSQS, SQS: &SQSPublisherConfig{QueueURL: "u"}},
		{ID: "s1", Type: TypeSNS, SNS: &SNSPublisherConfig{Region: "r"}},
		{ID: "g1", Type: TypeGCPPubSub, GCPPubSub: &GCPQueueConfig{ProjectID: "p"}},
		{Type: TypeHTTP},
	}
	for _, cfg := range cases {
		if err := validatePublisherConfig(cfg); err == nil {
			t.Fatalf("expected validation error for %#v", cfg)
		}
	}

	err := validatePublisherConfig(PublisherConfig{ID: "g2", Type: TypeGCPPubSub, GCPPubSub: &GCPQueueConfig{}})
	if err == nil || !strings.Contains(err.Error(), "gcp_pubsub.project_id, gcp_pubsub.topic") {
		t.Fatalf("expected both missing fields reported, got %v", err)
	}
	if err := validatePublisherConfig(PublisherConfig{ID: "ok", Type: TypeHTTP, HTTP: &HTTPPublisherConfig{URL: "https://hooks.example.com"}}); err != nil {
		t.Fatalf("valid http publisher rejected: %v", err)
	}
}

func TestNewEventFromRecord(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.FixedZone("X", 3600))
	evt := NewEvent(domain.CallRecord{ID: "1-1", Operation: "delete_list", Method: "DELETE", Path: "/lists/1?revision=2", StatusCode: 204, At: at})
	if evt.CallID != "1-1" || evt.StatusCode != 204 || evt.Operation != "delete_list" {
		t.Fatalf("unexpected event %+v", evt)
	}
	if evt.OccurredAt.Location() != time.UTC || !evt.OccurredAt.Equal(at) {
		t.Fatalf("OccurredAt = %v", evt.OccurredAt)
	}
}
