package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaishnaviks39/ai-powered-pdf-chat-app/internal/core/domain"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot determine home directory")
	}

	store, err := NewConfigStore("")

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(home, ".pdfchat", "config.toml"), store.Path())

	// Cleanup
	_ = os.Remove(store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	err = store.Set("test_key", "test_value")
	require.NoError(t, err)

	val, ok := store.Get("test_key")
	assert.True(t, ok)
	assert.Equal(t, "test_value", val)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("string_key", "hello"))
	require.NoError(t, store.Set("int_key", 42))
	require.NoError(t, store.Set("float_key", 0.7))
	require.NoError(t, store.Set("bool_key", true))

	assert.Equal(t, "hello", store.GetString("string_key"))
	assert.Equal(t, 42, store.GetInt("int_key"))
	assert.InDelta(t, 0.7, store.GetFloat("float_key"), 1e-9)
	assert.True(t, store.GetBool("bool_key"))

	// Non-existent keys
	assert.Equal(t, "", store.GetString("nonexistent"))
	assert.Equal(t, 0, store.GetInt("nonexistent"))
	assert.Equal(t, 0.0, store.GetFloat("nonexistent"))
	assert.False(t, store.GetBool("nonexistent"))

	// Wrong types
	assert.Equal(t, "", store.GetString("int_key"))
	assert.Equal(t, 0, store.GetInt("string_key"))
	assert.Equal(t, 0.0, store.GetFloat("string_key"))
	assert.False(t, store.GetBool("string_key"))
}

func TestConfigStore_GetFloat_AcceptsIntegers(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	// TOML integers are parsed as int64
	store.mu.Lock()
	store.data["whole"] = int64(1)
	store.mu.Unlock()

	assert.Equal(t, 1.0, store.GetFloat("whole"))
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()

	store1, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store1.Set("key1", "value1"))
	require.NoError(t, store1.Set("key2", 42))
	require.NoError(t, store1.Set("key3", 0.25))

	// Create new store instance - should load from file
	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "value1", store2.GetString("key1"))
	assert.Equal(t, 42, store2.GetInt("key2"))
	assert.InDelta(t, 0.25, store2.GetFloat("key3"), 1e-9)
}

func TestConfigStore_NestedKeysFlattened(t *testing.T) {
	tmpDir := t.TempDir()

	content := []byte("[llm]\nprovider = \"openai\"\nmodel = \"gpt-4\"\n")
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), content, 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "openai", store.GetString(KeyLLMProvider))
	assert.Equal(t, "gpt-4", store.GetString(KeyLLMModel))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("test", "value"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()

	corruptedContent := []byte("this is not valid TOML {{{[[")
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), corruptedContent, 0600))

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(id int) {
			key := "key" + string(rune('0'+id))
			_ = store.Set(key, id)
			_ = store.GetInt(key)
			_ = store.GetString(key)
			_, _ = store.Get(key)
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestChatSettings_DefaultsWhenUnset(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	settings := ChatSettings(store)

	assert.Equal(t, domain.DefaultTemperature, settings.Temperature)
	assert.Equal(t, domain.DefaultTopK, settings.TopK)
}

func TestChatSettings_FromStore(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyChatTemperature, 0.7))
	require.NoError(t, store.Set(KeyChatTopK, 3))
	require.NoError(t, store.Set(KeyChatChunkSize, 500))
	require.NoError(t, store.Set(KeyChatChunkOverlap, 50))

	settings := ChatSettings(store)

	assert.InDelta(t, 0.7, settings.Temperature, 1e-9)
	assert.Equal(t, 3, settings.TopK)
	assert.Equal(t, 500, settings.ChunkSize)
	assert.Equal(t, 50, settings.ChunkOverlap)
}

func TestChatSettings_OutOfRangeValuesClamped(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyChatTemperature, 2.5))
	require.NoError(t, store.Set(KeyChatTopK, 100))

	settings := ChatSettings(store)

	assert.Equal(t, domain.DefaultTemperature, settings.Temperature)
	assert.Equal(t, domain.DefaultTopK, settings.TopK)
}

func TestLLMSettings_EnvKeyOverridesStore(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyLLMProvider, "openai"))
	require.NoError(t, store.Set(KeyLLMAPIKey, "stored-key"))
	t.Setenv("OPENAI_API_KEY", "env-key")

	settings := LLMSettings(store)

	assert.Equal(t, domain.AIProviderOpenAI, settings.Provider)
	assert.Equal(t, "env-key", settings.APIKey)
	assert.True(t, settings.IsConfigured())
}

func TestEmbeddingSettings_OllamaIgnoresEnvKey(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyEmbeddingProvider, "ollama"))
	require.NoError(t, store.Set(KeyEmbeddingBaseURL, "http://localhost:11434"))
	t.Setenv("OPENAI_API_KEY", "env-key")

	settings := EmbeddingSettings(store)

	assert.Equal(t, domain.AIProviderOllama, settings.Provider)
	assert.Empty(t, settings.APIKey)
	assert.True(t, settings.IsConfigured())
}

func TestEmbeddingSettings_DefaultsToOpenAI(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	settings := EmbeddingSettings(store)

	assert.Equal(t, domain.AIProviderOpenAI, settings.Provider)
}
