package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcflab/vcfstat/internal/analysis"
)

const uploadVCF = `##fileformat=VCFv4.2
##FORMAT=<ID=GT,Number=1,Type=String,Description="Genotype">
##FORMAT=<ID=AD,Number=R,Type=Integer,Description="Allelic depths">
#CHROM	POS	ID	REF	ALT	QUAL	FILTER	INFO	FORMAT	S1
1	100	.	A	G	72	PASS	.	GT:AD	0/1:6,2
2	200	.	C	T	35	PASS	.	GT:AD	0/1:8,8
`

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	tmpDir := t.TempDir()
	return New(analysis.NewAnalyzer(), nil, tmpDir), tmpDir
}

func postVCF(t *testing.T, router *gin.Engine, field, filename, content string) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAnalyze_ReturnsReport(t *testing.T) {
	srv, _ := newTestServer(t)
	w := postVCF(t, srv.Router(), "file", "upload.vcf", uploadVCF)

	require.Equal(t, http.StatusOK, w.Code)

	var report analysis.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))

	assert.Equal(t, "upload.vcf", report.Source)
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 2, report.Stats.TotalVariants)
	require.Len(t, report.Records, 2)
	assert.Equal(t, "A→G", report.Records[0].Mutation)
	require.NotNil(t, report.Quality)
	assert.InDelta(t, 12.0, report.Quality.MeanDepth, 1e-9)
	assert.Equal(t, 2, report.Spectrum.Transitions)
}

func TestAnalyze_EmptyFile(t *testing.T) {
	srv, _ := newTestServer(t)
	empty := "##fileformat=VCFv4.2\n#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\n"
	w := postVCF(t, srv.Router(), "file", "empty.vcf", empty)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "no variants detected")
}

func TestAnalyze_ParseFailure(t *testing.T) {
	srv, _ := newTestServer(t)
	w := postVCF(t, srv.Router(), "file", "bad.vcf", "this is not a vcf\n")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestAnalyze_MissingFileField(t *testing.T) {
	srv, _ := newTestServer(t)
	w := postVCF(t, srv.Router(), "wrong_field", "upload.vcf", uploadVCF)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing file field")
}

func TestAnalyze_StagingFileRemoved(t *testing.T) {
	srv, tmpDir := newTestServer(t)
	router := srv.Router()

	// Success and failure paths both clean up
	postVCF(t, router, "file", "upload.vcf", uploadVCF)
	postVCF(t, router, "file", "bad.vcf", "broken\n")

	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	for _, e := range entries {
		t.Errorf("staging file left behind: %s", filepath.Join(tmpDir, e.Name()))
	}
}
