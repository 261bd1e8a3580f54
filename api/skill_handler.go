package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type skillHandler struct {
	responder Responder
	logger    zerolog.Logger
	skillRepo *database.SkillRepo
}

func newSkillHandler(skillRepo *database.SkillRepo) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder: NewResponder(logger),
		logger:    logger,
		skillRepo: skillRepo,
	}
}

// getAllSkills retrieves every skill in the catalogue
// @Summary Get all skills
// @Description Retrieves all skills from the database
// @Tags Skills
// @Produce json
// @Success 200 {array} models.Skill "List of skills"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching skills"
// @Router /skills [get]
func (h skillHandler) getAllSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.skillRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skills", err))
			return
		}

		h.responder.WriteJSON(w, skills)
	}
}
