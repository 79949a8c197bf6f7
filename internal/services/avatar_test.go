package services

import (
  "testing"
)

func TestNewAvatarServiceRequiresBucket(t *testing.T) {
  if _, err := NewAvatarService(nil, testLogger(t), nil); err == nil {
    t.Fatal("expected an error when no bucket service is wired")
  }
}
