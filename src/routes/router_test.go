package routes

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/CollectorsVault/CollectorsVault-Backend/src/middleware"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	excelize "github.com/xuri/excelize/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type testServer struct {
	router   *gin.Engine
	mock     sqlmock.Sqlmock
	sessions *middleware.SessionManager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = sqlDB.Close()
	})

	sessions := middleware.NewSessionManager("test-secret", time.Hour)
	router := NewRouter(Dependencies{
		DB:             db,
		Sessions:       sessions,
		AuthLimiter:    middleware.NewClientRateLimiter(100),
		AllowedOrigins: []string{"http://localhost:3000"},
	})
	return &testServer{router: router, mock: mock, sessions: sessions}
}

func (s *testServer) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) token(t *testing.T) string {
	t.Helper()
	token, err := s.sessions.Issue(1, "ana@example.com")
	require.NoError(t, err)
	return token
}

func TestProtectedRoutesRejectMissingSession(t *testing.T) {
	server := newTestServer(t)

	tests := []struct {
		method string
		path   string
		body   string
		want   string
	}{
		{http.MethodGet, "/collection", "", `{"data":null}`},
		{http.MethodGet, "/items-in-collection?collectionName=Cards", "", `{"data":null}`},
		{http.MethodGet, "/count-items-group-by-collection", "", `{"data":null}`},
		{http.MethodGet, "/collection-valuations", "", `{"success":false,"data":null}`},
		{http.MethodDelete, "/delete-collection", `{"collectionName":"Cards"}`, `{"success":false,"message":"Collector not authenticated"}`},
		{http.MethodPut, "/update-item", `{"itemID":1}`, `{"success":false,"message":"Collector not authenticated"}`},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := server.do(t, tt.method, tt.path, tt.body, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestRegisterRequiresAllFields(t *testing.T) {
	server := newTestServer(t)

	rec := server.do(t, http.MethodPost, "/register", `{"name":"Ana","email":"ana@example.com"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Name, email and password are required", rec.Body.String())
}

func TestLoginUnknownCollector(t *testing.T) {
	server := newTestServer(t)
	server.mock.ExpectQuery(regexp.QuoteMeta("FROM collectors WHERE email =")).
		WillReturnRows(sqlmock.NewRows([]string{"collector_id", "email", "collector_name", "password_hash"}))

	rec := server.do(t, http.MethodPost, "/login", `{"email":"ghost@example.com","password":"pw"}`, "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false}`, rec.Body.String())
}

func TestLogoutRevokesToken(t *testing.T) {
	server := newTestServer(t)
	token := server.token(t)

	rec := server.do(t, http.MethodPut, "/logout", "", token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	rec = server.do(t, http.MethodGet, "/collection", "", token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = server.do(t, http.MethodPut, "/logout", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetCollections(t *testing.T) {
	server := newTestServer(t)
	server.mock.ExpectQuery(regexp.QuoteMeta("SELECT c.collection_id, c.collection_name, c.date_created")).
		WithArgs("ana@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"collection_id", "collection_name", "date_created"}).
			AddRow(1, "Cards", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)))

	rec := server.do(t, http.MethodGet, "/collection", "", server.token(t))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[[1,"Cards","2024-01-02"]]}`, rec.Body.String())
}

func TestDeleteCollectionNotOwned(t *testing.T) {
	server := newTestServer(t)
	server.mock.ExpectBegin()
	server.mock.ExpectQuery(regexp.QuoteMeta("SELECT c.collection_id")).
		WillReturnRows(sqlmock.NewRows([]string{"collection_id"}))
	server.mock.ExpectRollback()

	rec := server.do(t, http.MethodDelete, "/delete-collection", `{"collectionName":"Cards"}`, server.token(t))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"No collection was found or Collector not authorized to delete this."}`, rec.Body.String())
}

func TestInsertTradingCard(t *testing.T) {
	server := newTestServer(t)
	server.mock.ExpectBegin()
	server.mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(MAX(item_id), 0) + 1 FROM items")).
		WillReturnRows(sqlmock.NewRows([]string{"next"}).AddRow(1))
	server.mock.ExpectExec(regexp.QuoteMeta("INSERT INTO series")).WillReturnResult(sqlmock.NewResult(0, 1))
	server.mock.ExpectExec(regexp.QuoteMeta("INSERT INTO items")).
		WithArgs(1, "Rookie Card", 7, "Topps Chrome", sqlmock.AnyArg(), "Topps", "USA").
		WillReturnResult(sqlmock.NewResult(0, 1))
	server.mock.ExpectExec(regexp.QuoteMeta("INSERT INTO trading_cards")).WillReturnResult(sqlmock.NewResult(0, 1))
	server.mock.ExpectCommit()

	body := `{"athlete":"Pete Alonso","cardVariation":"Base","sport":"Baseball","itemName":"Rookie Card",
		"prevCollectorID":"7","seriesName":"Topps Chrome","releaseDate":"2019-03-01","manufacturerName":"Topps","country":"USA"}`
	rec := server.do(t, http.MethodPost, "/insertTradingCard", body, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Trading card inserted successfully","itemID":1}`, rec.Body.String())
}

func TestInsertCoinValidation(t *testing.T) {
	server := newTestServer(t)

	rec := server.do(t, http.MethodPost, "/insertCoin", `{"currency":"USD"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Missing data"}`, rec.Body.String())

	body := `{"currency":"USD","denomination":"1 dollar","itemName":"Silver Eagle","seriesName":"American Eagle",
		"releaseDate":"20-10-1986","manufacturerName":"US Mint","country":"USA"}`
	rec = server.do(t, http.MethodPost, "/insertCoin", body, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateItemNotOwned(t *testing.T) {
	server := newTestServer(t)
	server.mock.ExpectExec(regexp.QuoteMeta("UPDATE items")).WillReturnResult(sqlmock.NewResult(0, 0))

	rec := server.do(t, http.MethodPut, "/update-item", `{"itemID":"4","newItemName":"Mine"}`, server.token(t))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false}`, rec.Body.String())
}

func TestSelectSeriesAfterDate(t *testing.T) {
	server := newTestServer(t)

	rec := server.do(t, http.MethodGet, "/selectSeriesAfterDate", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = server.do(t, http.MethodGet, "/selectSeriesAfterDate?releaseDate=2020/01/01", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	server.mock.ExpectQuery(regexp.QuoteMeta("FROM series")).
		WillReturnRows(sqlmock.NewRows([]string{"series_name", "release_date", "manufacturer_name"}))
	rec = server.do(t, http.MethodGet, "/selectSeriesAfterDate?releaseDate=2030-01-01", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"No series found after this date"}`, rec.Body.String())
}

func TestSelectAuctionHouses(t *testing.T) {
	server := newTestServer(t)

	for _, minItems := range []string{"0", "-2", "abc"} {
		rec := server.do(t, http.MethodGet, "/selectAuctionHouses?minItems="+minItems, "", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, minItems)
		assert.JSONEq(t, `{"message":"Minimum items must be a positive integer and greater than 0"}`, rec.Body.String())
	}

	server.mock.ExpectQuery(regexp.QuoteMeta("HAVING COUNT(inc.item_id) >=")).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"auction_house", "total_items"}).AddRow("Goldin", 3))
	rec := server.do(t, http.MethodGet, "/selectAuctionHouses?minItems=2", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[["Goldin",3]]`, rec.Body.String())
}

func TestProjectOnHistoryRejectsUnknownColumn(t *testing.T) {
	server := newTestServer(t)

	rec := server.do(t, http.MethodPut, "/project-on-history", `["itemID","password_hash"]`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []any{[]any{}}, body["data"])
	assert.Contains(t, body, "allowedColumns")
}

func TestProjectOnHistory(t *testing.T) {
	server := newTestServer(t)
	server.mock.ExpectQuery(regexp.QuoteMeta("SELECT item_id, prev_collector_name FROM history")).
		WillReturnRows(sqlmock.NewRows([]string{"item_id", "prev_collector_name"}).AddRow(int64(2), "Ana"))

	rec := server.do(t, http.MethodPut, "/project-on-history", `["itemID","prevCollectorName"]`, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[[2,"Ana"]]}`, rec.Body.String())
}

func TestAuctionsWithCollectionItems(t *testing.T) {
	server := newTestServer(t)

	rec := server.do(t, http.MethodPut, "/auctions-with-collection-items", `{"collectionID":"x"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	server.mock.ExpectQuery(regexp.QuoteMeta("SELECT a.auction_id, a.auction_house")).
		WithArgs(3, 3).
		WillReturnRows(sqlmock.NewRows([]string{"auction_id", "auction_house"}).AddRow(2, "Goldin"))
	rec = server.do(t, http.MethodPut, "/auctions-with-collection-items", `{"collectionID":3}`, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":[[2,"Goldin"]]}`, rec.Body.String())
}

func TestImportItemsRequiresFile(t *testing.T) {
	server := newTestServer(t)

	rec := server.do(t, http.MethodPost, "/import-items", "", server.token(t))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestImportItemsRejectsNonWorkbook(t *testing.T) {
	server := newTestServer(t)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "items.xlsx")
	require.NoError(t, err)
	_, err = part.Write([]byte("plain text"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/import-items", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+server.token(t))
	rec := httptest.NewRecorder()
	server.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestImportTemplate(t *testing.T) {
	server := newTestServer(t)

	rec := server.do(t, http.MethodGet, "/import-items/template", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))

	f, err := excelize.OpenReader(rec.Body)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"TradingCards", "Coins"}, f.GetSheetList())
}

func TestMetricsEndpoint(t *testing.T) {
	server := newTestServer(t)
	server.do(t, http.MethodGet, "/selectSeriesAfterDate", "", "")

	rec := server.do(t, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "collectors_vault_http_requests_total")
}

func TestRequestIDHeader(t *testing.T) {
	server := newTestServer(t)

	rec := server.do(t, http.MethodGet, "/selectSeriesAfterDate", "", "")
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestCheckDBConnection(t *testing.T) {
	server := newTestServer(t)

	rec := server.do(t, http.MethodGet, "/check-db-connection", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "connected", rec.Body.String())
}
