package response_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guiaflow/internal/domain"
	"guiaflow/internal/response"
)

func TestStripCodeFences_NoFencesUnchanged(t *testing.T) {
	in := `{"date":"2024-03-01","ruc":"20123456789"}`
	assert.Equal(t, in, response.StripCodeFences(in))
}

func TestStripCodeFences_WrappedOnceYieldsInnerContent(t *testing.T) {
	inner := `{"date":"2024-03-01"}`
	wrapped := "```json\n" + inner + "\n```"
	assert.Equal(t, "\n"+inner+"\n", response.StripCodeFences(wrapped))
}

func TestStripCodeFences_Idempotent(t *testing.T) {
	wrapped := "```json\n{\"ruc\":\"20123456789\"}\n```"
	once := response.StripCodeFences(wrapped)
	assert.Equal(t, once, response.StripCodeFences(once))
}

func TestDecode_RecordPassesThrough(t *testing.T) {
	raw := `{"date":"2024-03-01","ruc":"20123456789","extractedData":{"fechaLlegada":"2024-03-02","fechaRegistro":"2024-03-01","costoTransporte":"150.00","productos":"cemento x 50 bolsas"}}`

	record, err := response.Decode(raw)
	require.NoError(t, err)

	var got, want map[string]interface{}
	require.NoError(t, json.Unmarshal(record, &got))
	require.NoError(t, json.Unmarshal([]byte(raw), &want))
	assert.Equal(t, want, got)
}

func TestDecode_FencedRecordDecodes(t *testing.T) {
	raw := "```json\n{\"date\":\"2024-03-01\",\"ruc\":\"20123456789\"}\n```"

	record, err := response.Decode(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-03-01","ruc":"20123456789"}`, string(record))
}

func TestDecode_ErrorKeyIsRejection(t *testing.T) {
	raw := `{"error":"La imagen no parece ser una guía de remisión válida."}`

	_, err := response.Decode(raw)
	var rejected *domain.DocumentRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, "La imagen no parece ser una guía de remisión válida.", rejected.Reason)
}

func TestDecode_ErrorKeyWinsOverSiblingKeys(t *testing.T) {
	// Even when record-shaped keys sit next to it, "error" decides the branch.
	raw := `{"error":"documento no válido","date":"2024-03-01","ruc":"20123456789"}`

	_, err := response.Decode(raw)
	var rejected *domain.DocumentRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, "documento no válido", rejected.Reason)
}

func TestDecode_EmptyErrorStringIsNotRejection(t *testing.T) {
	raw := `{"error":"","date":"2024-03-01"}`

	record, err := response.Decode(raw)
	require.NoError(t, err)
	assert.NotEmpty(t, record)
}

func TestDecode_MalformedOutputRetainsRaw(t *testing.T) {
	raw := "Lo siento, no puedo procesar este documento."

	_, err := response.Decode(raw)
	var malformed *domain.MalformedOutputError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, raw, malformed.RawOutput)
}

func TestDecode_TruncatedJSONIsMalformed(t *testing.T) {
	raw := `{"date":"2024-03-01","ruc":`

	_, err := response.Decode(raw)
	var malformed *domain.MalformedOutputError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, raw, malformed.RawOutput)
}

func TestDecode_NonObjectOutputIsMalformed(t *testing.T) {
	_, err := response.Decode(`["not","an","object"]`)
	var malformed *domain.MalformedOutputError
	assert.ErrorAs(t, err, &malformed)
}
