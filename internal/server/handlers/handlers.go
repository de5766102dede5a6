package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pdstack5770/GSTR-2B-RECO/internal/model"
	"github.com/pdstack5770/GSTR-2B-RECO/internal/recon"
	"github.com/pdstack5770/GSTR-2B-RECO/internal/service/excel"
	"github.com/pdstack5770/GSTR-2B-RECO/internal/store"
)

// Handlers holds the API surface. Uploaded workbooks and computed results
// live in memory only; the store keeps nothing but the run audit trail.
type Handlers struct {
	store    *store.Store
	exporter *excel.Exporter
	aliases  recon.AliasConfig

	maxUploadBytes int64

	uploads   map[string]*uploadedFile
	uploadsMu sync.RWMutex

	results   map[string]*model.Result
	resultsMu sync.RWMutex
}

type uploadedFile struct {
	FileName string
	Bytes    []byte
	Sheets   []model.SheetInfo
}

// NewHandlers creates the handler set. store may be nil (run history is then
// disabled, everything else still works).
func NewHandlers(st *store.Store, maxUploadBytes int64) *Handlers {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 10 * 1024 * 1024
	}
	return &Handlers{
		store:          st,
		exporter:       excel.NewExporter(),
		aliases:        recon.DefaultAliases(),
		maxUploadBytes: maxUploadBytes,
		uploads:        make(map[string]*uploadedFile),
		results:        make(map[string]*model.Result),
	}
}

// RegisterRoutes mounts the API under the given group.
func (h *Handlers) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/files", h.UploadFile)
	r.GET("/files/:fileId/preview", h.PreviewRows)
	r.POST("/reconcile", h.Reconcile)
	r.GET("/results/:resultId", h.GetResult)
	r.GET("/results/:resultId/export", h.ExportCategory)
	r.GET("/runs", h.ListRuns)
}

// Response is the common JSON envelope.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

func errorResponse(c *gin.Context, code int, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: message,
	})
}

// UploadFile accepts one workbook upload and returns a file handle plus the
// sheet list for preview.
func (h *Handlers) UploadFile(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		errorResponse(c, 1001, "please attach a file")
		return
	}
	defer file.Close()

	if header.Size > h.maxUploadBytes {
		errorResponse(c, 1003, fmt.Sprintf("file too large, limit is %dMB", h.maxUploadBytes/(1024*1024)))
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".xlsx" && ext != ".xls" {
		errorResponse(c, 1002, "only .xlsx and .xls files are supported")
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		errorResponse(c, 1002, "failed to read file")
		return
	}

	parser := excel.NewParser()
	if err := parser.LoadFile(bytes.NewReader(content)); err != nil {
		errorResponse(c, 1002, "failed to parse file: "+err.Error())
		return
	}
	defer parser.Close()

	sheets, err := parser.Sheets()
	if err != nil {
		errorResponse(c, 1002, "failed to list sheets")
		return
	}

	fileID := parser.FileID()

	h.uploadsMu.Lock()
	h.uploads[fileID] = &uploadedFile{
		FileName: header.Filename,
		Bytes:    content,
		Sheets:   sheets,
	}
	h.uploadsMu.Unlock()

	success(c, gin.H{
		"fileId":   fileID,
		"fileName": header.Filename,
		"fileSize": header.Size,
		"sheets":   sheets,
	})
}

// PreviewRows returns leading rows of one sheet for the upload preview.
func (h *Handlers) PreviewRows(c *gin.Context) {
	fileID := c.Param("fileId")
	sheet := c.Query("sheet")

	up, ok := h.upload(fileID)
	if !ok {
		errorResponse(c, 2001, "file not found or expired")
		return
	}

	parser := excel.NewParser()
	if err := parser.LoadFile(bytes.NewReader(up.Bytes)); err != nil {
		errorResponse(c, 1002, "failed to parse file")
		return
	}
	defer parser.Close()

	if sheet == "" {
		first, err := parser.PickSheet(model.ReportTypeOther)
		if err != nil {
			errorResponse(c, 2002, "workbook has no sheets")
			return
		}
		sheet = first
	}

	rows, err := parser.PreviewRows(sheet, 8)
	if err != nil {
		errorResponse(c, 2002, "failed to read sheet")
		return
	}

	success(c, gin.H{
		"sheet": sheet,
		"rows":  rows,
	})
}

// Reconcile parses both uploads concurrently and runs the matching engine.
// The two parses fail independently; if either fails the whole request fails
// and no partial result is kept.
func (h *Handlers) Reconcile(c *gin.Context) {
	var req struct {
		BooksFileID  string `json:"booksFileId"`
		Gstr2bFileID string `json:"gstr2bFileId"`
		ReportType   string `json:"reportType"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, 1001, "invalid request body")
		return
	}

	books, ok := h.upload(req.BooksFileID)
	if !ok {
		errorResponse(c, 2001, "books file not found or expired")
		return
	}
	gstr2b, ok := h.upload(req.Gstr2bFileID)
	if !ok {
		errorResponse(c, 2001, "gstr-2b file not found or expired")
		return
	}

	reportType := model.ParseReportType(req.ReportType)

	var booksRows, gstr2bRows [][]string
	var g errgroup.Group
	g.Go(func() error {
		rows, err := rawRowsFor(books, model.ReportTypeOther)
		if err != nil {
			return fmt.Errorf("books: %w", err)
		}
		booksRows = rows
		return nil
	})
	g.Go(func() error {
		rows, err := rawRowsFor(gstr2b, reportType)
		if err != nil {
			return fmt.Errorf("gstr-2b: %w", err)
		}
		gstr2bRows = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		errorResponse(c, 3001, err.Error())
		return
	}

	result, err := recon.Reconcile(booksRows, gstr2bRows, reportType, h.aliases)
	if err != nil {
		errorResponse(c, 3001, err.Error())
		return
	}

	resultID := uuid.New().String()
	h.resultsMu.Lock()
	h.results[resultID] = result
	h.resultsMu.Unlock()

	if h.store != nil {
		run := &store.Run{
			ID:         resultID,
			BooksFile:  books.FileName,
			Gstr2bFile: gstr2b.FileName,
			ReportType: string(reportType),
			Summary:    result.Summary,
			CreatedAt:  time.Now(),
		}
		if err := h.store.CreateRun(run); err != nil {
			log.Printf("failed to record run %s: %v", resultID, err)
		}
	}

	success(c, gin.H{
		"resultId": resultID,
		"result":   result,
	})
}

// GetResult returns a cached result by ID.
func (h *Handlers) GetResult(c *gin.Context) {
	result, ok := h.result(c.Param("resultId"))
	if !ok {
		errorResponse(c, 2003, "result not found or expired")
		return
	}
	success(c, result)
}

// ExportCategory streams one result category as an .xlsx attachment. Empty
// categories are rejected rather than producing a blank file.
func (h *Handlers) ExportCategory(c *gin.Context) {
	result, ok := h.result(c.Param("resultId"))
	if !ok {
		errorResponse(c, 2003, "result not found or expired")
		return
	}

	category := c.DefaultQuery("category", "report")

	f, err := h.exporter.Export(result, category)
	if err != nil {
		if errors.Is(err, excel.ErrNothingToExport) {
			errorResponse(c, 3002, "category is empty, nothing to export")
			return
		}
		errorResponse(c, 3002, err.Error())
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("%s-%s.xlsx", category, time.Now().Format("20060102-150405"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		log.Printf("failed to stream export %s: %v", filename, err)
	}
}

// ListRuns returns the recent reconciliation history.
func (h *Handlers) ListRuns(c *gin.Context) {
	if h.store == nil {
		success(c, []*store.Run{})
		return
	}
	runs, err := h.store.ListRuns(50)
	if err != nil {
		errorResponse(c, 5001, err.Error())
		return
	}
	success(c, runs)
}

func (h *Handlers) upload(fileID string) (*uploadedFile, bool) {
	h.uploadsMu.RLock()
	defer h.uploadsMu.RUnlock()
	up, ok := h.uploads[fileID]
	return up, ok
}

func (h *Handlers) result(resultID string) (*model.Result, bool) {
	h.resultsMu.RLock()
	defer h.resultsMu.RUnlock()
	r, ok := h.results[resultID]
	return r, ok
}

// rawRowsFor opens a fresh parser over the cached bytes; excelize files are
// not safe to share between goroutines.
func rawRowsFor(up *uploadedFile, reportType model.ReportType) ([][]string, error) {
	parser := excel.NewParser()
	if err := parser.LoadFile(bytes.NewReader(up.Bytes)); err != nil {
		return nil, err
	}
	defer parser.Close()

	sheet, err := parser.PickSheet(reportType)
	if err != nil {
		return nil, err
	}
	return parser.RawRows(sheet)
}
