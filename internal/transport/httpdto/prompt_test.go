package httpdto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPatchPromptRequest_AbsentKeysStayNil(t *testing.T) {
	t.Parallel()

	var req PatchPromptRequest
	require.NoError(t, json.Unmarshal([]byte(`{"prompt":"updated"}`), &req))

	require.Nil(t, req.Type)
	require.Nil(t, req.Metadata)
	require.NotNil(t, req.Prompt)
	require.Equal(t, "updated", *req.Prompt)
}

func TestPatchPromptRequest_ExplicitNullMetadataIsPresent(t *testing.T) {
	t.Parallel()

	var req PatchPromptRequest
	require.NoError(t, json.Unmarshal([]byte(`{"metadata":null}`), &req))

	require.NotNil(t, req.Metadata, "an explicit null must be distinguishable from an absent key")
	require.JSONEq(t, "null", string(*req.Metadata))
}

func TestPatchPromptRequest_MetadataValuePreservedVerbatim(t *testing.T) {
	t.Parallel()

	var req PatchPromptRequest
	require.NoError(t, json.Unmarshal([]byte(`{"metadata":{"lang":"en","n":1}}`), &req))

	require.NotNil(t, req.Metadata)
	require.JSONEq(t, `{"lang":"en","n":1}`, string(*req.Metadata))
}

func TestPatchPromptRequest_RejectsNonObjectBody(t *testing.T) {
	t.Parallel()

	var req PatchPromptRequest
	require.Error(t, json.Unmarshal([]byte(`[1,2]`), &req))
	require.Error(t, json.Unmarshal([]byte(`{"type":5}`), &req))
}
