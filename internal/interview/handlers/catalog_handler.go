package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nkove/interviewd/internal/interview/models"
	"github.com/nkove/interviewd/internal/interview/repository"
)

// CharacterController defines the character use cases the catalog
// handlers invoke.
type CharacterController interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Character, error)
	List(ctx context.Context, filters repository.CharacterFilters) ([]*models.Character, error)
	Activate(ctx context.Context, id uuid.UUID) (*models.Character, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*models.Character, error)
}

// CompanyController defines the company use cases the catalog handlers
// invoke.
type CompanyController interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Company, error)
	List(ctx context.Context, filters repository.CompanyFilters) ([]*models.Company, error)
	Activate(ctx context.Context, id uuid.UUID) (*models.Company, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*models.Company, error)
}

// CatalogHandler serves the character and company catalog endpoints.
type CatalogHandler struct {
	characters CharacterController
	companies  CompanyController
	logger     *zap.Logger
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(characters CharacterController, companies CompanyController, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		characters: characters,
		companies:  companies,
		logger:     logger.Named("catalog_handler"),
	}
}

// ListCharacters handles GET /characters with optional filters.
func (h *CatalogHandler) ListCharacters(c *gin.Context) {
	var filters repository.CharacterFilters
	if v := c.Query("role"); v != "" {
		role := models.CharacterRole(v)
		filters.Role = &role
	}
	if v := c.Query("gender"); v != "" {
		gender := models.Gender(v)
		filters.Gender = &gender
	}
	if v := c.Query("company_type"); v != "" {
		companyType := models.CompanyType(v)
		filters.CompanyType = &companyType
	}
	if v := c.Query("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid active flag"})
			return
		}
		filters.Active = &active
	}

	characters, err := h.characters.List(c.Request.Context(), filters)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, charactersToVO(characters))
}

// GetCharacter handles GET /characters/:id.
func (h *CatalogHandler) GetCharacter(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	character, err := h.characters.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, characterToVO(character))
}

// ActivateCharacter handles POST /characters/:id/activate.
func (h *CatalogHandler) ActivateCharacter(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	character, err := h.characters.Activate(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("Activate character failed", zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, characterToVO(character))
}

// DeactivateCharacter handles POST /characters/:id/deactivate.
func (h *CatalogHandler) DeactivateCharacter(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	character, err := h.characters.Deactivate(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("Deactivate character failed", zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, characterToVO(character))
}

// ListCompanies handles GET /companies with optional filters.
func (h *CatalogHandler) ListCompanies(c *gin.Context) {
	var filters repository.CompanyFilters
	if v := c.Query("type"); v != "" {
		companyType := models.CompanyType(v)
		filters.Type = &companyType
	}
	if v := c.Query("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid active flag"})
			return
		}
		filters.Active = &active
	}

	companies, err := h.companies.List(c.Request.Context(), filters)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, companiesToVO(companies))
}

// GetCompany handles GET /companies/:id.
func (h *CatalogHandler) GetCompany(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	company, err := h.companies.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, companyToVO(company))
}

// ActivateCompany handles POST /companies/:id/activate.
func (h *CatalogHandler) ActivateCompany(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	company, err := h.companies.Activate(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("Activate company failed", zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, companyToVO(company))
}

// DeactivateCompany handles POST /companies/:id/deactivate.
func (h *CatalogHandler) DeactivateCompany(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	company, err := h.companies.Deactivate(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("Deactivate company failed", zap.Error(err))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, companyToVO(company))
}
