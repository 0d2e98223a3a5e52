package usecases

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"insure-dw.backend/internal/domain/entities"
	domainerrors "insure-dw.backend/internal/domain/errors"
	"insure-dw.backend/internal/domain/repositories"
	"insure-dw.backend/pkg/logger"
)

// APIKeyStore holds the OpenAI API key as explicit state
type APIKeyStore interface {
	Set(ctx context.Context, key string) error
	Get(ctx context.Context) (string, error)
	Delete(ctx context.Context) error
}

// InMemoryKeyStore is the fallback key store when redis is unavailable
type InMemoryKeyStore struct {
	mu  sync.RWMutex
	key string
}

// NewInMemoryKeyStore creates an empty in-memory key store
func NewInMemoryKeyStore() *InMemoryKeyStore {
	return &InMemoryKeyStore{}
}

func (s *InMemoryKeyStore) Set(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.key = key
	return nil
}

func (s *InMemoryKeyStore) Get(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.key, nil
}

func (s *InMemoryKeyStore) Delete(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.key = ""
	return nil
}

// ChatClient is the slice of the LLM API the gateway needs
type ChatClient interface {
	ValidateKey(ctx context.Context) error
	Complete(ctx context.Context, prompt string) (string, error)
}

// ChatClientFactory builds a client bound to one API key
type ChatClientFactory func(apiKey string) ChatClient

// QueryLimits bounds the row counts of gateway queries
type QueryLimits struct {
	DefaultRowLimit int
	MaxRowLimit     int
}

// NLQueryUsecase converts natural language to SQL via an LLM and runs
// vetted SELECT statements against the warehouse
type NLQueryUsecase struct {
	queryRepo repositories.QueryRepository
	keyStore  APIKeyStore
	newClient ChatClientFactory
	limits    QueryLimits
}

// NewNLQueryUsecase creates a new natural language query usecase
func NewNLQueryUsecase(
	queryRepo repositories.QueryRepository,
	keyStore APIKeyStore,
	newClient ChatClientFactory,
	limits QueryLimits,
) *NLQueryUsecase {
	if limits.DefaultRowLimit <= 0 {
		limits.DefaultRowLimit = 100
	}
	if limits.MaxRowLimit <= 0 {
		limits.MaxRowLimit = 1000
	}
	return &NLQueryUsecase{
		queryRepo: queryRepo,
		keyStore:  keyStore,
		newClient: newClient,
		limits:    limits,
	}
}

// SetAPIKey validates the key against the live API before storing it
func (u *NLQueryUsecase) SetAPIKey(ctx context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return domainerrors.BadRequest("api key is required")
	}
	if err := u.newClient(key).ValidateKey(ctx); err != nil {
		return domainerrors.BadRequest(fmt.Sprintf("api key rejected: %v", err))
	}
	if err := u.keyStore.Set(ctx, key); err != nil {
		return domainerrors.Internal(err)
	}
	logger.Info(ctx, "openai api key updated")
	return nil
}

// HasAPIKey reports whether a key is configured
func (u *NLQueryUsecase) HasAPIKey(ctx context.Context) (bool, error) {
	key, err := u.keyStore.Get(ctx)
	if err != nil {
		return false, domainerrors.Internal(err)
	}
	return key != "", nil
}

// ClearAPIKey removes the stored key
func (u *NLQueryUsecase) ClearAPIKey(ctx context.Context) error {
	if err := u.keyStore.Delete(ctx); err != nil {
		return domainerrors.Internal(err)
	}
	return nil
}

// Schema renders the queryable table layout, the same text the
// conversion prompt is built from.
func (u *NLQueryUsecase) Schema(ctx context.Context) (string, error) {
	schema, err := u.queryRepo.DescribeSchema(ctx)
	if err != nil {
		return "", domainerrors.Internal(err)
	}
	return schema, nil
}

const promptTemplate = `You are a SQL expert. Given the database schema below, convert the natural language question into a single SQL SELECT statement.

Schema:
%s

Question: %s

Respond in exactly this format:
SQL:
<the SQL statement>
EXPLANATION:
<one or two sentences explaining the query>`

// Convert translates a natural language question to SQL. A missing API
// key is reported as unauthorized.
func (u *NLQueryUsecase) Convert(ctx context.Context, question string) (*entities.ConvertedQuery, error) {
	key, err := u.keyStore.Get(ctx)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	if key == "" {
		return nil, domainerrors.Unauthorized("openai api key not configured")
	}

	schema, err := u.queryRepo.DescribeSchema(ctx)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}

	raw, err := u.newClient(key).Complete(ctx, fmt.Sprintf(promptTemplate, schema, question))
	if err != nil {
		return nil, domainerrors.Internal(err)
	}

	converted := parseConversion(raw)
	if converted.SQL == "" {
		return nil, domainerrors.Internal(fmt.Errorf("llm response contained no SQL: %s", raw))
	}
	logger.Debug(ctx, "converted natural language query", zap.String("sql", converted.SQL))
	return converted, nil
}

// parseConversion splits the LLM response on its SQL: and EXPLANATION:
// markers. A response without markers is treated as bare SQL.
func parseConversion(raw string) *entities.ConvertedQuery {
	converted := &entities.ConvertedQuery{RawResponse: raw}

	body := raw
	if idx := strings.Index(body, "SQL:"); idx >= 0 {
		body = body[idx+len("SQL:"):]
	}
	if idx := strings.Index(body, "EXPLANATION:"); idx >= 0 {
		converted.Explanation = strings.TrimSpace(body[idx+len("EXPLANATION:"):])
		body = body[:idx]
	}

	sql := strings.TrimSpace(body)
	sql = strings.TrimPrefix(sql, "```sql")
	sql = strings.TrimPrefix(sql, "```")
	sql = strings.TrimSuffix(sql, "```")
	converted.SQL = strings.TrimSpace(sql)
	return converted
}

// SanitizeSQL vets a statement for execution: SELECT only, trailing
// semicolon stripped, and a row limit appended when none is present.
func (u *NLQueryUsecase) SanitizeSQL(sql string, limit int) (string, error) {
	cleaned := strings.TrimSpace(sql)
	cleaned = strings.TrimSuffix(cleaned, ";")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return "", domainerrors.BadRequest("sql statement is empty")
	}

	if !strings.HasPrefix(strings.ToUpper(cleaned), "SELECT") {
		return "", domainerrors.NewAppError(400, "only SELECT statements are allowed", domainerrors.ErrQueryRejected)
	}

	if limit <= 0 {
		limit = u.limits.DefaultRowLimit
	}
	if limit > u.limits.MaxRowLimit {
		limit = u.limits.MaxRowLimit
	}

	if !strings.Contains(strings.ToLower(cleaned), "limit") {
		cleaned = fmt.Sprintf("%s LIMIT %d", cleaned, limit)
	}
	return cleaned, nil
}

// Execute vets and runs a SQL statement against the warehouse
func (u *NLQueryUsecase) Execute(ctx context.Context, sql string, limit int) (*entities.SQLResult, error) {
	cleaned, err := u.SanitizeSQL(sql, limit)
	if err != nil {
		return nil, err
	}
	result, err := u.queryRepo.ExecuteQuery(ctx, cleaned)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	return result, nil
}

// Query converts a natural language question and executes the result
func (u *NLQueryUsecase) Query(ctx context.Context, input *entities.NLQueryInput) (*entities.ConvertedQuery, *entities.SQLResult, error) {
	converted, err := u.Convert(ctx, input.Query)
	if err != nil {
		return nil, nil, err
	}
	result, err := u.Execute(ctx, converted.SQL, input.Limit)
	if err != nil {
		return converted, nil, err
	}
	return converted, result, nil
}
