package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/IPampurin/LinkManager/pkg/export"
	"github.com/IPampurin/LinkManager/pkg/service"
	"github.com/gin-gonic/gin"
	"github.com/wb-go/wbf/logger"
)

// CreateShortLink обрабатывает POST /links
func CreateShortLink(svc service.ServiceMethods, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {

		var req CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Ctx(c.Request.Context()).Error("неверный формат запроса", "error", err)
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "неверный формат запроса"})
			return
		}

		link, err := svc.CreateShortLink(c.Request.Context(), log, req.OriginalURL, req.ShortCode)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrBadOriginalURL), errors.Is(err, service.ErrBadShortCode):
				c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			case errors.Is(err, service.ErrShortCodeTaken):
				c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
			case errors.Is(err, service.ErrCreateFailed):
				log.Ctx(c.Request.Context()).Error("попытки создания ссылки исчерпаны", "error", err)
				c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
			default:
				log.Ctx(c.Request.Context()).Error("ошибка создания ссылки", "error", err)
				c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "внутренняя ошибка сервера"})
			}
			return
		}

		c.JSON(http.StatusCreated, link)
	}
}

// GetLinks обрабатывает GET /links?limit=&cursor=
func GetLinks(svc service.ServiceMethods, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {

		limit := 0
		if rawLimit := c.Query("limit"); rawLimit != "" {
			parsed, err := strconv.Atoi(rawLimit)
			if err != nil {
				c.JSON(http.StatusBadRequest, ErrorResponse{Error: "параметр limit должен быть числом"})
				return
			}
			limit = parsed
		}

		page, err := svc.ListLinks(c.Request.Context(), log, limit, c.Query("cursor"))
		if err != nil {
			if errors.Is(err, service.ErrBadCursor) {
				c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
				return
			}
			log.Ctx(c.Request.Context()).Error("ошибка получения списка ссылок", "error", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "внутренняя ошибка"})
			return
		}

		c.JSON(http.StatusOK, page)
	}
}

// DeleteLink обрабатывает DELETE /links/:id
func DeleteLink(svc service.ServiceMethods, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {

		id := c.Param("id")

		err := svc.DeleteLink(c.Request.Context(), log, id)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrBadID):
				c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			case errors.Is(err, service.ErrNotFound):
				c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			default:
				log.Ctx(c.Request.Context()).Error("ошибка удаления ссылки", "error", err)
				c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "внутренняя ошибка"})
			}
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// GetLinkInfo обрабатывает GET /links/:short
func GetLinkInfo(svc service.ServiceMethods, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {

		shortCode := c.Param("short")

		link, err := svc.LinkInfo(c.Request.Context(), log, shortCode)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
				return
			}
			log.Ctx(c.Request.Context()).Error("ошибка получения ссылки", "error", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "внутренняя ошибка"})
			return
		}

		c.JSON(http.StatusOK, link)
	}
}

// Redirect обрабатывает GET /r/:short
func Redirect(svc service.ServiceMethods, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {

		shortCode := c.Param("short")

		originalURL, err := svc.Redirect(c.Request.Context(), log, shortCode)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
				return
			}
			log.Ctx(c.Request.Context()).Error("ошибка перехода по ссылке", "error", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "внутренняя ошибка"})
			return
		}

		c.Redirect(http.StatusFound, originalURL)
	}
}

// ExportLinks обрабатывает POST /exports
func ExportLinks(exp export.ExportMethods, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {

		url, err := exp.ExportCSV(c.Request.Context(), log)
		if err != nil {
			// причина сбоя остаётся в логах, клиенту отдаём общий ответ
			log.Ctx(c.Request.Context()).Error("ошибка выгрузки ссылок", "error", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "не удалось выполнить выгрузку"})
			return
		}

		c.JSON(http.StatusOK, ExportResponse{URL: url})
	}
}

// SearchByOriginal обрабатывает GET /search/original?q=...
func SearchByOriginal(svc service.ServiceMethods, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {

		query := c.Query("q")
		if query == "" {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "параметр q обязателен"})
			return
		}

		links, err := svc.SearchByOriginalURL(c.Request.Context(), log, query)
		if err != nil {
			log.Ctx(c.Request.Context()).Error("ошибка поиска по оригинальному URL", "error", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "внутренняя ошибка"})
			return
		}

		c.JSON(http.StatusOK, links)
	}
}

// SearchByShort обрабатывает GET /search/short?q=...
func SearchByShort(svc service.ServiceMethods, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {

		query := c.Query("q")
		if query == "" {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "параметр q обязателен"})
			return
		}

		links, err := svc.SearchByShortCode(c.Request.Context(), log, query)
		if err != nil {
			log.Ctx(c.Request.Context()).Error("ошибка поиска по короткому коду", "error", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "внутренняя ошибка"})
			return
		}

		c.JSON(http.StatusOK, links)
	}
}
