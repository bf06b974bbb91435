package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esaiascronelius/cloudflare-ddns/pkg/cfapi"
)

func TestDNSRecordsClient_List(t *testing.T) {
	t.Parallel()

	dispatcher, _, _ := newTestDispatcher(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/client/v4/zones/zone-1/dns_records", request.URL.Path)
		writeEnvelope(writer, []cfapi.DNSRecord{
			{ID: "rec-1", Type: "A", Name: "example.com", Content: "192.0.2.1"},
			{ID: "rec-2", Type: "TXT", Name: "example.com", Content: "v=spf1"},
		})
	})

	records, err := dispatcher.DNSRecords().List(context.Background(), "zone-1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "A", records[0].Type)
}

func TestDNSRecordsClient_Create(t *testing.T) {
	t.Parallel()

	dispatcher, hits, _ := newTestDispatcher(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "/client/v4/zones/zone-1/dns_records", request.URL.Path)

		var body cfapi.DNSRecordRequest

		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "A", body.Type)
		assert.Equal(t, "192.0.2.7", body.Content)

		writeEnvelope(writer, cfapi.DNSRecord{ID: "rec-new", Type: body.Type, Name: body.Name, Content: body.Content})
	})

	request := &cfapi.DNSRecordRequest{Type: "A", Name: "home.example.com", Content: "192.0.2.7", TTL: 1}

	record, err := dispatcher.DNSRecords().Create(context.Background(), "zone-1", request)
	require.NoError(t, err)
	assert.Equal(t, "rec-new", record.ID)

	// Mutations bypass the cache entirely, so repeating one always reaches
	// the network.
	_, err = dispatcher.DNSRecords().Create(context.Background(), "zone-1", request)
	require.NoError(t, err)
	assert.Equal(t, int64(2), hits.Load())
}

func TestDNSRecordsClient_Update(t *testing.T) {
	t.Parallel()

	dispatcher, _, _ := newTestDispatcher(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "PUT", request.Method)
		assert.Equal(t, "/client/v4/zones/zone-1/dns_records/rec-1", request.URL.Path)
		writeEnvelope(writer, cfapi.DNSRecord{ID: "rec-1", Type: "A", Content: "198.51.100.9"})
	})

	record, err := dispatcher.DNSRecords().Update(context.Background(), "zone-1", "rec-1", &cfapi.DNSRecordRequest{
		Type:    "A",
		Name:    "home.example.com",
		Content: "198.51.100.9",
	})
	require.NoError(t, err)
	assert.Equal(t, "198.51.100.9", record.Content)
}

func TestDNSRecordsClient_Delete(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		dispatcher, _, _ := newTestDispatcher(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "DELETE", request.Method)
			writeEnvelope(writer, map[string]string{"id": "rec-1"})
		})

		err := dispatcher.DNSRecords().Delete(context.Background(), "zone-1", "rec-1")
		require.NoError(t, err)
	})

	t.Run("missing record", func(t *testing.T) {
		t.Parallel()

		dispatcher, _, _ := newTestDispatcher(t, func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"success":false,"errors":[{"code":81044,"message":"Record does not exist"}],"messages":[],"result":null}`))
		})

		err := dispatcher.DNSRecords().Delete(context.Background(), "zone-1", "rec-missing")
		require.Error(t, err)
		assert.True(t, cfapi.IsNotFound(err))
	})
}
