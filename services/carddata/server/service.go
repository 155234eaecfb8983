package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"smashup-backend/services/carddata"
	"smashup-backend/services/carddata/db"
	"smashup-backend/services/carddata/scraper"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

const Version = "1.0.0"

var tracer = otel.Tracer("services/carddata/server")

type Server struct {
	data    carddata.Service
	scraper scraper.Scraper
	jobs    *jobRegistry
}

func NewServer(data carddata.Service, s scraper.Scraper) *Server {
	return &Server{
		data:    data,
		scraper: s,
		jobs:    newJobRegistry(),
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/health", s.Health)
	r.GET("/sets", s.GetSets)
	r.GET("/sets/:set_id/factions", s.GetFactionsBySet)
	r.GET("/factions/:faction_id/cards", s.GetFactionCards)
	r.GET("/bases", s.GetBases)
	r.GET("/cards/search", s.SearchCards)
	r.POST("/scrape/faction/:faction_name", s.ScrapeFaction)
	r.POST("/scrape/set/:set_name", s.ScrapeSet)
	r.POST("/scrape/all", s.ScrapeAll)
	r.GET("/scrape/jobs/:job_id", s.GetScrapeJob)
	r.DELETE("/data", s.ClearData)

	return r
}

// launch runs one scrape in the background and records its result in
// the job registry. The request context is not reused, the scrape
// outlives the request.
func (s *Server) launch(name string, run func(ctx context.Context) scraper.Result) string {
	id := s.jobs.start()
	go func() {
		ctx, span := tracer.Start(context.Background(), name)
		defer span.End()
		span.SetAttributes(attribute.String("job_id", id))

		s.jobs.complete(id, run(ctx))
	}()
	return id
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   Version,
	})
}

func (s *Server) GetSets(c *gin.Context) {
	sets, err := s.data.Sets(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to retrieve sets"})
		return
	}
	if sets == nil {
		sets = []db.Set{}
	}
	c.JSON(http.StatusOK, sets)
}

func (s *Server) GetFactionsBySet(c *gin.Context) {
	factions, err := s.data.FactionsBySet(c.Request.Context(), c.Param("set_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to retrieve factions"})
		return
	}
	if len(factions) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Set not found or no factions available"})
		return
	}
	c.JSON(http.StatusOK, factions)
}

func (s *Server) GetFactionCards(c *gin.Context) {
	ctx := c.Request.Context()

	_, err := s.data.Faction(ctx, c.Param("faction_id"))
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Faction not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to retrieve faction"})
		return
	}

	cards, err := s.data.FactionCards(ctx, c.Param("faction_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to retrieve cards"})
		return
	}
	if cards.Minions == nil {
		cards.Minions = []db.Minion{}
	}
	if cards.Actions == nil {
		cards.Actions = []db.Action{}
	}
	c.JSON(http.StatusOK, cards)
}

func (s *Server) GetBases(c *gin.Context) {
	bases, err := s.data.Bases(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to retrieve bases"})
		return
	}
	if bases == nil {
		bases = []db.Base{}
	}
	c.JSON(http.StatusOK, bases)
}

func (s *Server) SearchCards(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Missing query parameter 'q'"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid limit"})
		return
	}

	matches, err := s.data.SearchCards(c.Request.Context(), query, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to search cards"})
		return
	}
	if matches == nil {
		matches = []carddata.CardMatch{}
	}
	c.JSON(http.StatusOK, matches)
}

func startedResponse(message, jobId string) gin.H {
	return gin.H{
		"success":         true,
		"message":         message,
		"items_processed": 0,
		"errors":          []string{},
		"job_id":          jobId,
	}
}

func (s *Server) ScrapeFaction(c *gin.Context) {
	factionName := c.Param("faction_name")
	setName := c.Query("set_name")

	jobId := s.launch("scrape:faction", func(ctx context.Context) scraper.Result {
		return s.scraper.ScrapeFactionInSet(ctx, factionName, setName)
	})
	c.JSON(http.StatusAccepted, startedResponse(
		fmt.Sprintf("Faction scraping for '%s' started in background", factionName),
		jobId,
	))
}

func (s *Server) ScrapeSet(c *gin.Context) {
	setName := c.Param("set_name")

	jobId := s.launch("scrape:set", func(ctx context.Context) scraper.Result {
		return s.scraper.ScrapeSetDeep(ctx, setName)
	})
	c.JSON(http.StatusAccepted, startedResponse(
		fmt.Sprintf("Set scraping for '%s' started in background", setName),
		jobId,
	))
}

func (s *Server) ScrapeAll(c *gin.Context) {
	jobId := s.launch("scrape:all", func(ctx context.Context) scraper.Result {
		return s.scraper.ScrapeAll(ctx)
	})
	c.JSON(http.StatusAccepted, startedResponse("Full scraping started in background", jobId))
}

func (s *Server) GetScrapeJob(c *gin.Context) {
	job, ok := s.jobs.get(c.Param("job_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Job not found"})
		return
	}
	c.JSON(http.StatusOK, job)
}

func (s *Server) ClearData(c *gin.Context) {
	err := s.data.ClearAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to clear database"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Database cleared successfully"})
}
