package suggest

import (
	"context"
	"os"
	"reflect"
	"testing"
)

func TestParseWords(t *testing.T) {
	words, err := ParseWords(`["cat", "Dog", " bird ", "cat", "x-ray", ""]`, 0)
	if err != nil {
		t.Fatalf("ParseWords error: %v", err)
	}
	want := []string{"cat", "dog", "bird"}
	if !reflect.DeepEqual(words, want) {
		t.Errorf("words = %v, want %v", words, want)
	}
}

func TestParseWordsLimit(t *testing.T) {
	words, err := ParseWords(`["one", "two", "three", "four"]`, 2)
	if err != nil {
		t.Fatalf("ParseWords error: %v", err)
	}
	if !reflect.DeepEqual(words, []string{"one", "two"}) {
		t.Errorf("words = %v", words)
	}
}

func TestParseWordsInvalid(t *testing.T) {
	if _, err := ParseWords(`not json`, 0); err == nil {
		t.Error("expected error for invalid JSON")
	}
	if _, err := ParseWords(`["", "123", "x y"]`, 0); err == nil {
		t.Error("expected error when no usable words remain")
	}
}

func TestSuggestIntegration(t *testing.T) {
	projectID := os.Getenv("GCP_PROJECT_ID")
	if projectID == "" {
		t.Skip("GCP_PROJECT_ID not set, skipping integration test")
	}

	ctx := context.Background()
	client, err := NewClient(ctx, projectID, os.Getenv("GCP_REGION"))
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	defer client.Close()

	words, err := client.Suggest(ctx, "animals", 8)
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(words) == 0 {
		t.Fatal("no words returned")
	}
	t.Logf("suggested words: %v", words)
}
