package server

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/qwipolabs/marketgraph/internal/config"
	"github.com/qwipolabs/marketgraph/internal/driver"
	"github.com/qwipolabs/marketgraph/internal/engine"
)

type Server struct {
	Engine *engine.Engine
}

func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Could not load %s: %v. Falling back to defaults and env vars", cfgPath, err)
		cfg = config.Default()
	}

	// Env overrides
	if uri := os.Getenv("NEO4J_URI"); uri != "" {
		cfg.Neo4j.URI = uri
	}
	if user := os.Getenv("NEO4J_USERNAME"); user != "" {
		cfg.Neo4j.User = user
	}
	if pass := os.Getenv("NEO4J_PASSWORD"); pass != "" {
		cfg.Neo4j.Password = pass
	}

	d, err := driver.NewNeo4jDriver(cfg.Neo4j.URI, cfg.Neo4j.User, cfg.Neo4j.Password)
	if err != nil {
		log.Fatalf("Failed to connect to Neo4j: %v", err)
	}

	return &Server{
		Engine: engine.New(d, cfg),
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/health", s.Health)
	r.GET("/retailers", s.ListRetailers)
	r.GET("/retailers/:id/profile", s.GetProfile)
	r.GET("/retailers/:id/recommendations", s.GetComprehensiveRecommendations)
	r.GET("/retailers/:id/recommendations/:type", s.GetRecommendationsByType)

	return r
}

func (s *Server) Health(c *gin.Context) {
	connected := true
	result, err := s.Engine.Driver.ExecuteQuery(c.Request.Context(), driver.CountNodesQuery, nil)
	if err != nil || len(result.Records) == 0 {
		connected = false
	}

	status := "healthy"
	code := http.StatusOK
	if !connected {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":          status,
		"service":         "MarketGraph Recommendation API",
		"neo4j_connected": connected,
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) ListRetailers(c *gin.Context) {
	limit := intQuery(c, "limit", 20)

	retailers, err := s.Engine.ListRetailers(c.Request.Context(), limit)
	if err != nil {
		log.Printf("Failed to list retailers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch retailers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"retailers":   retailers,
		"total_count": len(retailers),
	})
}

func (s *Server) GetProfile(c *gin.Context) {
	retailerID := c.Param("id")

	profile, err := s.Engine.GetRetailerProfile(c.Request.Context(), retailerID)
	if err != nil {
		log.Printf("Failed to fetch profile for retailer %s: %v", retailerID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch retailer profile", "retailer_id": retailerID})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Retailer not found", "retailer_id": retailerID})
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (s *Server) GetComprehensiveRecommendations(c *gin.Context) {
	retailerID := c.Param("id")
	limitPerType := intQuery(c, "limit_per_type", 0)

	recommendations, err := s.Engine.GetComprehensiveRecommendations(c.Request.Context(), retailerID, limitPerType)
	if err != nil {
		if errors.Is(err, engine.ErrRetailerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Retailer not found", "retailer_id": retailerID})
			return
		}
		log.Printf("Failed to generate recommendations for retailer %s: %v", retailerID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate recommendations", "retailer_id": retailerID})
		return
	}

	total := 0
	for _, recs := range recommendations {
		total += len(recs)
	}

	c.JSON(http.StatusOK, gin.H{
		"retailer_id":           retailerID,
		"recommendations":       recommendations,
		"total_recommendations": total,
		"generated_at":          time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) GetRecommendationsByType(c *gin.Context) {
	retailerID := c.Param("id")
	recType := c.Param("type")
	limit := intQuery(c, "limit", 0)

	recommendations, err := s.Engine.GetRecommendationsByType(c.Request.Context(), retailerID, recType, limit)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrUnknownStrategy):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":       "Invalid recommendation type",
				"valid_types": engine.StrategyNames(),
			})
		case errors.Is(err, engine.ErrRetailerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Retailer not found", "retailer_id": retailerID})
		default:
			log.Printf("Failed to generate %s recommendations for retailer %s: %v", recType, retailerID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate recommendations", "retailer_id": retailerID})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"retailer_id":         retailerID,
		"recommendation_type": recType,
		"recommendations":     recommendations,
		"count":               len(recommendations),
		"generated_at":        time.Now().UTC().Format(time.RFC3339),
	})
}

func intQuery(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
