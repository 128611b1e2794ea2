package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
	"github.com/nithin-dev/bizmate-golang/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductRouter(h *Handlers) *gin.Engine {
	router := gin.New()
	router.POST("/v1/products", h.CreateProduct)
	router.GET("/v1/products", h.GetProducts)
	router.GET("/v1/products/search", h.SearchProducts)
	router.PUT("/v1/products/:productId", h.UpdateProduct)
	router.DELETE("/v1/products/:productId", h.DeleteProduct)
	return router
}

func validProductForm() map[string]string {
	return map[string]string{
		"productId":         "P1",
		"productName":       "Widget",
		"description":       "A widget",
		"unitOfMeasurement": "pcs",
		"price":             "10.50",
		"currency":          "INR",
		"productCategory":   "hardware",
		"expiryDate":        "2025-01-01",
		"batchNumber":       "B7",
		"status":            "active",
		"discountAllowed":   "yes",
	}
}

func postProductForm(t *testing.T, router *gin.Engine, fields map[string]string, imageName string) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if imageName != "" {
		part, err := writer.CreateFormFile("image", imageName)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/products", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	router.ServeHTTP(w, req)
	return w
}

func TestCreateProduct(t *testing.T) {
	h, mock := newTestHandlers(t)
	router := newProductRouter(h)

	mock.ExpectExec("INSERT INTO productextra").
		WithArgs("P1", "Widget", "A widget", "pcs", "10.50", "INR", "hardware",
			"2025-01-01", "B7", "active", "yes", nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	w := postProductForm(t, router, validProductForm(), "")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProductWithImage(t *testing.T) {
	h, mock := newTestHandlers(t)
	router := newProductRouter(h)

	mock.ExpectExec("INSERT INTO productextra").
		WithArgs("P1", "Widget", "A widget", "pcs", "10.50", "INR", "hardware",
			"2025-01-01", "B7", "active", "yes", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	w := postProductForm(t, router, validProductForm(), "photo.png")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProductDuplicateKeyRemovesSavedImage(t *testing.T) {
	h, mock := newTestHandlers(t)
	router := newProductRouter(h)

	mock.ExpectExec("INSERT INTO productextra").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'P1'"})

	w := postProductForm(t, router, validProductForm(), "photo.png")
	assert.Equal(t, http.StatusConflict, w.Code)

	// The upload directory must not keep a file no row references.
	entries, err := os.ReadDir(h.Cfg.UploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProductMissingRequiredField(t *testing.T) {
	required := []string{"productId", "productName", "description",
		"unitOfMeasurement", "price", "currency", "productCategory"}

	for _, field := range required {
		t.Run(field, func(t *testing.T) {
			h, mock := newTestHandlers(t)
			router := newProductRouter(h)

			fields := validProductForm()
			delete(fields, field)

			w := postProductForm(t, router, fields, "")

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetProducts(t *testing.T) {
	h, mock := newTestHandlers(t)
	router := newProductRouter(h)

	columns := []string{"id", "productId", "productName", "description",
		"unitOfMeasurement", "price", "currency", "productCategory", "expiryDate",
		"batchNumber", "status", "discountAllowed", "image", "created_at"}
	rows := sqlmock.NewRows(columns).
		AddRow(1, "P1", "Widget", "A widget", "pcs", "10.50", "INR", "hardware",
			"2025-01-01", "B7", "active", "yes", nil, time.Now()).
		AddRow(2, "P2", "Gadget", "A gadget", "pcs", "99", "INR", "hardware",
			"", "", "active", "no", "gadget-abc.png", time.Now())
	mock.ExpectQuery("SELECT .* FROM productextra").WillReturnRows(rows)

	w := doJSON(t, router, http.MethodGet, "/v1/products", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 2)
	assert.Nil(t, products[0].Image)
	require.NotNil(t, products[1].Image)
	assert.Equal(t, "gadget-abc.png", *products[1].Image)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchProducts(t *testing.T) {
	h, mock := newTestHandlers(t)
	router := newProductRouter(h)

	rows := sqlmock.NewRows([]string{"id", "productName", "description"}).
		AddRow(1, "Widget", "A widget")
	mock.ExpectQuery("SELECT id, productName, description FROM productextra WHERE productName LIKE").
		WithArgs("%wid%", "%wid%").
		WillReturnRows(rows)

	w := doJSON(t, router, http.MethodGet, "/v1/products/search?q=wid", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var results []models.ProductSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "Widget", results[0].ProductName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchProductsEmptyQueryMatchesAll(t *testing.T) {
	h, mock := newTestHandlers(t)
	router := newProductRouter(h)

	rows := sqlmock.NewRows([]string{"id", "productName", "description"}).
		AddRow(1, "Widget", "A widget").
		AddRow(2, "Gadget", "A gadget")
	mock.ExpectQuery("SELECT id, productName, description FROM productextra WHERE productName LIKE").
		WithArgs("%%", "%%").
		WillReturnRows(rows)

	w := doJSON(t, router, http.MethodGet, "/v1/products/search", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var results []models.ProductSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	assert.Len(t, results, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func validProductUpdate() map[string]string {
	return map[string]string{
		"productName":       "Widget",
		"description":       "A widget",
		"unitOfMeasurement": "pcs",
		"price":             "12.00",
		"currency":          "INR",
		"productCategory":   "hardware",
		"expiryDate":        "2025-01-01",
		"batchNumber":       "B8",
		"status":            "active",
		"discountAllowed":   "no",
	}
}

func TestUpdateProduct(t *testing.T) {
	h, mock := newTestHandlers(t)
	router := newProductRouter(h)

	mock.ExpectExec("UPDATE productextra SET").
		WithArgs("Widget", "A widget", "pcs", "12.00", "INR", "hardware",
			"2025-01-01", "B8", "active", "no", "P1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := doJSON(t, router, http.MethodPut, "/v1/products/P1", validProductUpdate())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProductNotFound(t *testing.T) {
	h, mock := newTestHandlers(t)
	router := newProductRouter(h)

	mock.ExpectExec("UPDATE productextra SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	w := doJSON(t, router, http.MethodPut, "/v1/products/NOPE", validProductUpdate())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteProductNotFound(t *testing.T) {
	h, mock := newTestHandlers(t)
	router := newProductRouter(h)

	mock.ExpectExec("DELETE FROM productextra WHERE productId").
		WithArgs("NOPE").
		WillReturnResult(sqlmock.NewResult(0, 0))

	w := doJSON(t, router, http.MethodDelete, "/v1/products/NOPE", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
