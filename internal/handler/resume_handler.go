package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/foliogen/foliogen/internal/extract"
	"github.com/foliogen/foliogen/internal/model"
	"github.com/foliogen/foliogen/internal/pkg/errcode"
	"github.com/foliogen/foliogen/internal/pkg/response"
	"github.com/foliogen/foliogen/internal/service"
)

type ResumeHandler struct {
	resumes *service.ResumeService
	maxSize int64
}

func NewResumeHandler(resumes *service.ResumeService, maxSize int64) *ResumeHandler {
	return &ResumeHandler{resumes: resumes, maxSize: maxSize}
}

type resumeMeta struct {
	ID       string `json:"id"`
	FileName string `json:"file_name"`
	State    string `json:"state"`
	Ctime    int64  `json:"ctime"`
}

type uploadResponse struct {
	Resume resumeMeta            `json:"resume"`
	Parsed *extract.ParsedResume `json:"parsed"`
}

func toResumeMeta(r *model.Resume) resumeMeta {
	return resumeMeta{ID: r.ID, FileName: r.FileName, State: r.State, Ctime: r.Ctime}
}

func (h *ResumeHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, errcode.ErrInvalidFile, "file is required")
		return
	}
	if h.maxSize > 0 && file.Size > h.maxSize {
		response.Error(c, errcode.ErrFileTooLarge, "file exceeds "+formatUploadLimit(h.maxSize))
		return
	}
	opened, err := file.Open()
	if err != nil {
		response.Error(c, errcode.ErrInvalidFile, "failed to open file")
		return
	}
	defer opened.Close()

	resume, parsed, err := h.resumes.Upload(c.Request.Context(), getUserID(c), file.Filename, opened, file.Size)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, uploadResponse{Resume: toResumeMeta(resume), Parsed: parsed})
}

func (h *ResumeHandler) Latest(c *gin.Context) {
	resume, parsed, err := h.resumes.Latest(c.Request.Context(), getUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, uploadResponse{Resume: toResumeMeta(resume), Parsed: parsed})
}

func (h *ResumeHandler) List(c *gin.Context) {
	offset, _ := strconv.ParseUint(c.DefaultQuery("offset", "0"), 10, 32)
	limit, _ := strconv.ParseUint(c.DefaultQuery("limit", "20"), 10, 32)
	items, err := h.resumes.List(c.Request.Context(), getUserID(c), uint(offset), uint(limit))
	if err != nil {
		handleError(c, err)
		return
	}
	metas := make([]resumeMeta, 0, len(items))
	for _, item := range items {
		metas = append(metas, toResumeMeta(item))
	}
	response.Success(c, gin.H{"items": metas})
}

func (h *ResumeHandler) Get(c *gin.Context) {
	resume, parsed, err := h.resumes.Get(c.Request.Context(), getUserID(c), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, uploadResponse{Resume: toResumeMeta(resume), Parsed: parsed})
}
