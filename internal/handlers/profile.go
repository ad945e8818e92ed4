package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/devconnector/internal/handlers/dto"
	"github.com/thereayou/devconnector/internal/middleware"
	"github.com/thereayou/devconnector/internal/models"
	"github.com/thereayou/devconnector/internal/services"
	"github.com/thereayou/devconnector/internal/validation"
)

const dateLayout = "2006-01-02"

type ProfileHandler struct {
	db services.DatabaseService
}

func NewProfileHandler(db services.DatabaseService) *ProfileHandler {
	return &ProfileHandler{db: db}
}

// Current профиль текущего пользователя
func (h *ProfileHandler) Current(c *gin.Context) {
	me := middleware.CurrentUser(c)

	profile, ok := h.loadProfile(c, me.ID, "noprofile", "Profile not available for the User")
	if !ok {
		return
	}
	h.respondProfile(c, profile)
}

// All все профили, пустой список не ошибка
func (h *ProfileHandler) All(c *gin.Context) {
	ctx := c.Request.Context()

	profiles, err := h.db.GetProfiles(ctx)
	if err != nil {
		internalError(c, "profiles: list", err)
		return
	}

	resp, err := h.withUsers(ctx, profiles)
	if err != nil {
		internalError(c, "profiles: populate users", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) ByHandle(c *gin.Context) {
	profile, err := h.db.GetProfileByHandle(c.Request.Context(), c.Param("handle"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"handle": "Handle not found"})
			return
		}
		internalError(c, "profiles: by handle", err)
		return
	}
	h.respondProfile(c, profile)
}

// ByUserID ищет профиль по id пользователя, а не профиля
func (h *ProfileHandler) ByUserID(c *gin.Context) {
	profile, ok := h.loadProfile(c, c.Param("id"), "id", "Id not found")
	if !ok {
		return
	}
	h.respondProfile(c, profile)
}

// Save создаёт профиль или обновляет существующий
func (h *ProfileHandler) Save(c *gin.Context) {
	var req dto.ProfileRequest
	if !bind(c, &req) {
		return
	}

	errs, ok := validation.Profile(req)
	if !ok {
		c.JSON(http.StatusBadRequest, errs)
		return
	}

	ctx := c.Request.Context()
	me := middleware.CurrentUser(c)
	handle := strings.TrimSpace(req.Handle)

	profile, err := h.db.GetProfileByUser(ctx, me.ID)
	exists := err == nil
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		internalError(c, "profile: get", err)
		return
	}

	if !exists || profile.Handle != handle {
		taken, err := h.handleTaken(ctx, handle, me.ID)
		if err != nil {
			internalError(c, "profile: check handle", err)
			return
		}
		if taken {
			c.JSON(http.StatusBadRequest, gin.H{"handle": "Handle in use"})
			return
		}
	}

	if !exists {
		profile = &models.Profile{UserID: me.ID, Date: time.Now()}
	}
	applyProfileFields(profile, req, handle)

	if exists {
		err = h.db.UpdateProfile(ctx, profile)
	} else {
		err = h.db.SaveProfile(ctx, profile)
	}
	if err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"handle": "Handle in use"})
			return
		}
		internalError(c, "profile: save", err)
		return
	}

	h.respondProfile(c, profile)
}

func (h *ProfileHandler) AddExperience(c *gin.Context) {
	var req dto.ExperienceRequest
	if !bind(c, &req) {
		return
	}

	errs, ok := validation.Experience(req)
	if !ok {
		c.JSON(http.StatusBadRequest, errs)
		return
	}

	profile, ok := h.loadProfile(c, middleware.CurrentUser(c).ID, "noprofile", "Profile not found")
	if !ok {
		return
	}

	from, to := parsePeriod(req.From, req.To, req.Current)
	profile.AddExperience(models.Experience{
		ID:          models.NewID(),
		Title:       strings.TrimSpace(req.Title),
		Company:     strings.TrimSpace(req.Company),
		Location:    req.Location,
		From:        from,
		To:          to,
		Current:     req.Current,
		Description: req.Description,
	})

	h.updateProfile(c, profile)
}

func (h *ProfileHandler) AddEducation(c *gin.Context) {
	var req dto.EducationRequest
	if !bind(c, &req) {
		return
	}

	errs, ok := validation.Education(req)
	if !ok {
		c.JSON(http.StatusBadRequest, errs)
		return
	}

	profile, ok := h.loadProfile(c, middleware.CurrentUser(c).ID, "noprofile", "Profile not found")
	if !ok {
		return
	}

	from, to := parsePeriod(req.From, req.To, req.Current)
	profile.AddEducation(models.Education{
		ID:           models.NewID(),
		School:       strings.TrimSpace(req.School),
		Degree:       strings.TrimSpace(req.Degree),
		FieldOfStudy: strings.TrimSpace(req.FieldOfStudy),
		From:         from,
		To:           to,
		Current:      req.Current,
		Description:  req.Description,
	})

	h.updateProfile(c, profile)
}

func (h *ProfileHandler) DeleteExperience(c *gin.Context) {
	profile, ok := h.loadProfile(c, middleware.CurrentUser(c).ID, "noprofile", "Profile not found")
	if !ok {
		return
	}

	if !profile.RemoveExperience(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"noexperience": "Experience not found"})
		return
	}
	h.updateProfile(c, profile)
}

func (h *ProfileHandler) DeleteEducation(c *gin.Context) {
	profile, ok := h.loadProfile(c, middleware.CurrentUser(c).ID, "noprofile", "Profile not found")
	if !ok {
		return
	}

	if !profile.RemoveEducation(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"noeducation": "Education not found"})
		return
	}
	h.updateProfile(c, profile)
}

// DeleteAccount удаляет профиль и пользователя
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	if err := h.db.DeleteAccount(c.Request.Context(), middleware.CurrentUser(c).ID); err != nil {
		internalError(c, "profile: delete account", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// loadProfile при отсутствии профиля отвечает 404 с переданным ключом
func (h *ProfileHandler) loadProfile(c *gin.Context, userID, key, msg string) (*models.Profile, bool) {
	profile, err := h.db.GetProfileByUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{key: msg})
			return nil, false
		}
		internalError(c, "profile: get", err)
		return nil, false
	}
	return profile, true
}

func (h *ProfileHandler) updateProfile(c *gin.Context, profile *models.Profile) {
	if err := h.db.UpdateProfile(c.Request.Context(), profile); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"noprofile": "Profile not found"})
			return
		}
		internalError(c, "profile: update", err)
		return
	}
	h.respondProfile(c, profile)
}

func (h *ProfileHandler) handleTaken(ctx context.Context, handle, userID string) (bool, error) {
	other, err := h.db.GetProfileByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return other.UserID != userID, nil
}

func (h *ProfileHandler) respondProfile(c *gin.Context, profile *models.Profile) {
	resp, err := h.withUsers(c.Request.Context(), []models.Profile{*profile})
	if err != nil {
		internalError(c, "profile: populate user", err)
		return
	}
	c.JSON(http.StatusOK, resp[0])
}

// withUsers подставляет имя и аватар владельцев одним запросом
func (h *ProfileHandler) withUsers(ctx context.Context, profiles []models.Profile) ([]dto.ProfileResponse, error) {
	ids := make([]string, 0, len(profiles))
	seen := make(map[string]struct{}, len(profiles))
	for _, p := range profiles {
		if _, ok := seen[p.UserID]; ok {
			continue
		}
		seen[p.UserID] = struct{}{}
		ids = append(ids, p.UserID)
	}

	users, err := h.db.GetUsers(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	resp := make([]dto.ProfileResponse, len(profiles))
	for i := range profiles {
		p := &profiles[i]
		p.EnsureLists()
		info := &dto.UserInfo{ID: p.UserID}
		if u, ok := byID[p.UserID]; ok {
			info.Name = u.Name
			info.Avatar = u.Avatar
		}
		resp[i] = dto.ProfileResponse{Profile: p, User: info}
	}
	return resp, nil
}

// applyProfileFields необязательные поля перезаписываются только если заданы,
// social заменяется целиком
func applyProfileFields(p *models.Profile, req dto.ProfileRequest, handle string) {
	p.Handle = handle
	p.Status = strings.TrimSpace(req.Status)
	p.Skills = splitSkills(req.Skills)

	setIfPresent(&p.Company, req.Company)
	setIfPresent(&p.Website, req.Website)
	setIfPresent(&p.Location, req.Location)
	setIfPresent(&p.Bio, req.Bio)
	setIfPresent(&p.GithubUsername, req.GithubUsername)

	p.Social = models.Social{
		YouTube:   strings.TrimSpace(req.YouTube),
		Twitter:   strings.TrimSpace(req.Twitter),
		Facebook:  strings.TrimSpace(req.Facebook),
		LinkedIn:  strings.TrimSpace(req.LinkedIn),
		Instagram: strings.TrimSpace(req.Instagram),
	}
}

func setIfPresent(dst *string, value string) {
	if v := strings.TrimSpace(value); v != "" {
		*dst = v
	}
}

func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, s := range parts {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// parsePeriod даты уже проверены валидацией; при current дата окончания сбрасывается
func parsePeriod(from, to string, current bool) (time.Time, *time.Time) {
	start, _ := time.Parse(dateLayout, strings.TrimSpace(from))
	if current || strings.TrimSpace(to) == "" {
		return start, nil
	}
	end, err := time.Parse(dateLayout, strings.TrimSpace(to))
	if err != nil {
		return start, nil
	}
	return start, &end
}
