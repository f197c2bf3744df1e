package handlers

import (
	"log/slog"

	"github.com/carepoint/carepoint-api/internal/database"
	"github.com/carepoint/carepoint-api/internal/models"
	"github.com/gofiber/fiber/v2"
)

// GetArticles lists published health articles, optionally filtered by
// category or featured flag.
func GetArticles(c *fiber.Ctx) error {
	query := database.DB.Where("is_published = ?", true)

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if c.Query("featured") == "true" {
		query = query.Where("is_featured = ?", true)
	}

	var articles []models.HealthArticle
	if err := query.Order("created_at DESC").Find(&articles).Error; err != nil {
		slog.Warn("article list degraded to empty set", "error", err)
		return c.JSON([]models.HealthArticle{})
	}

	return c.JSON(articles)
}

func GetArticle(c *fiber.Ctx) error {
	var article models.HealthArticle
	err := database.DB.Where("slug = ? AND is_published = ?", c.Params("slug"), true).First(&article).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Article not found",
		})
	}

	return c.JSON(article)
}

func GetFeaturedArticles(c *fiber.Ctx) error {
	var articles []models.HealthArticle
	err := database.DB.Where("is_published = ? AND is_featured = ?", true, true).
		Order("created_at DESC").
		Limit(6).
		Find(&articles).Error
	if err != nil {
		slog.Warn("featured articles degraded to empty set", "error", err)
		return c.JSON([]models.HealthArticle{})
	}

	return c.JSON(articles)
}

// GetLatestArticles returns one article from each headline category, topped
// up with the most recent articles when a category is empty.
func GetLatestArticles(c *fiber.Ctx) error {
	categories := []string{"covid", "flu", "mental_health"}
	articles := []models.HealthArticle{}
	seen := map[string]bool{}

	for _, category := range categories {
		var article models.HealthArticle
		err := database.DB.Where("is_published = ? AND category = ?", true, category).
			Order("created_at DESC").
			First(&article).Error
		if err == nil {
			articles = append(articles, article)
			seen[article.Slug] = true
		}
	}

	if len(articles) < 3 {
		var extra []models.HealthArticle
		database.DB.Where("is_published = ?", true).
			Order("created_at DESC").
			Limit(6).
			Find(&extra)
		for _, article := range extra {
			if len(articles) >= 3 {
				break
			}
			if !seen[article.Slug] {
				articles = append(articles, article)
				seen[article.Slug] = true
			}
		}
	}

	return c.JSON(articles)
}

func GetPrivacyPolicy(c *fiber.Ctx) error {
	var policy models.PrivacyPolicy
	err := database.DB.Where("is_active = ?", true).
		Order("effective_date DESC").
		First(&policy).Error
	if err != nil {
		return c.JSON(fiber.Map{
			"title":         "Privacy Policy",
			"content":       "Privacy policy content is being updated.",
			"version":       "1.0",
			"effectiveDate": "2024-01-01",
		})
	}

	return c.JSON(policy)
}

func GetFAQs(c *fiber.Ctx) error {
	query := database.DB.Where("is_active = ?", true)
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var faqs []models.FAQ
	if err := query.Order("display_order").Order("created_at DESC").Find(&faqs).Error; err != nil {
		slog.Warn("FAQ list degraded to empty set", "error", err)
		return c.JSON([]models.FAQ{})
	}

	return c.JSON(faqs)
}

// GetPublicHealthInfo bundles the homepage content: latest articles and FAQs.
func GetPublicHealthInfo(c *fiber.Ctx) error {
	articles := []models.HealthArticle{}
	database.DB.Where("is_published = ?", true).
		Order("created_at DESC").
		Limit(6).
		Find(&articles)

	faqs := []models.FAQ{}
	database.DB.Where("is_active = ?", true).
		Order("display_order").
		Limit(5).
		Find(&faqs)

	return c.JSON(fiber.Map{
		"articles": articles,
		"faqs":     faqs,
	})
}
