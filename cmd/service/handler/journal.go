package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/arnav-motiramani/daily-doodles/internal/core"
	v1 "github.com/arnav-motiramani/daily-doodles/internal/logic/v1"
	"github.com/arnav-motiramani/daily-doodles/internal/response"
	"github.com/arnav-motiramani/daily-doodles/pkg/types"
	"github.com/arnav-motiramani/daily-doodles/pkg/utils"
)

type HttpSrv struct {
	Core   *core.Core
	Engine *gin.Engine
}

type ListJournalRequest struct {
	Page     uint64 `json:"page" form:"page"`
	PageSize uint64 `json:"pagesize" form:"pagesize" binding:"max=50"`
}

func (s *HttpSrv) ListJournal(c *gin.Context) {
	var (
		err error
		req ListJournalRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	list, total := v1.NewJournalLogic(c, s.Core).ListEntries(req.Page, req.PageSize)
	response.APISuccess(c, ListJournalResponse{
		List:  list,
		Total: total,
	})
}

type ListJournalResponse struct {
	List  []types.Entry `json:"list"`
	Total int64         `json:"total"`
}

type GetJournalRequest struct {
	ID string `json:"id" form:"id" binding:"required"`
}

func (s *HttpSrv) GetJournal(c *gin.Context) {
	var (
		err error
		req GetJournalRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	entry, err := v1.NewJournalLogic(c, s.Core).GetEntry(req.ID)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, entry)
}

type CreateJournalRequest struct {
	Title     string   `json:"title" binding:"max=128"`
	Content   string   `json:"content"`
	Mood      string   `json:"mood" binding:"max=32"`
	AIInsight string   `json:"ai_insight"`
	Tags      []string `json:"tags"`
	CreatedAt int64    `json:"created_at"`
}

func (s *HttpSrv) CreateJournal(c *gin.Context) {
	var (
		err error
		req CreateJournalRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	entry, err := v1.NewJournalLogic(c, s.Core).SaveEntry("", types.EntryDraft{
		Title:     req.Title,
		Content:   req.Content,
		Mood:      req.Mood,
		AIInsight: req.AIInsight,
		Tags:      req.Tags,
		CreatedAt: req.CreatedAt,
	})
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, entry)
}

type UpdateJournalRequest struct {
	ID        string   `json:"id" binding:"required"`
	Title     string   `json:"title" binding:"max=128"`
	Content   string   `json:"content"`
	Mood      string   `json:"mood" binding:"max=32"`
	AIInsight string   `json:"ai_insight"`
	Tags      []string `json:"tags"`
}

func (s *HttpSrv) UpdateJournal(c *gin.Context) {
	var (
		err error
		req UpdateJournalRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	entry, err := v1.NewJournalLogic(c, s.Core).SaveEntry(req.ID, types.EntryDraft{
		Title:     req.Title,
		Content:   req.Content,
		Mood:      req.Mood,
		AIInsight: req.AIInsight,
		Tags:      req.Tags,
	})
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, entry)
}

type DeleteJournalRequest struct {
	ID string `json:"id" form:"id" binding:"required"`
}

func (s *HttpSrv) DeleteJournal(c *gin.Context) {
	var (
		err error
		req DeleteJournalRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	if err = v1.NewJournalLogic(c, s.Core).DeleteEntry(req.ID); err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}

func (s *HttpSrv) JournalStats(c *gin.Context) {
	stats, err := v1.NewJournalLogic(c, s.Core).Stats()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, stats)
}
