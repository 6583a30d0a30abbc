package storage

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscriptObjectName(t *testing.T) {
	assert.Equal(t, "transcripts/abc123.txt", TranscriptObjectName("abc123"))
	assert.Equal(t, "transcripts/temp_meeting_1700000000000.txt", TranscriptObjectName("temp_meeting_1700000000000"))
	assert.Equal(t, "transcripts/passwd.txt", TranscriptObjectName("../../etc/passwd"))
}

func TestRewriteHost(t *testing.T) {
	u, err := url.Parse("http://minio:9000/meeting-transcripts/transcripts/m1.txt?X-Amz-Signature=abc")
	require.NoError(t, err)

	assert.Equal(t, u.String(), rewriteHost(u, ""))
	assert.Equal(t,
		"https://files.example.com/meeting-transcripts/transcripts/m1.txt?X-Amz-Signature=abc",
		rewriteHost(u, "https://files.example.com"))
}
