package httpserver

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"creatim-shop/internal/domain"
	"github.com/gin-gonic/gin"
)

var errInvalidPriceFilter = errors.New("invalid price filter")

func listArticlesHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		min, max, ranged, err := priceRange(c)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid price filter")
			return
		}

		var articles []domain.Article
		if ranged {
			articles, err = svc.ArticlesByPriceRange(c.Request.Context(), min, max)
		} else {
			articles, err = svc.Articles(c.Request.Context(), c.Query("search"))
		}
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		if articles == nil {
			articles = []domain.Article{}
		}
		respondOK(c, articles)
	}
}

func getArticleHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid article id")
			return
		}
		article, err := svc.ArticleByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				respondError(c, http.StatusNotFound, "Article not found")
				return
			}
			respondError(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		respondOK(c, article)
	}
}

func listSubscriptionsHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		min, max, ranged, err := priceRange(c)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid price filter")
			return
		}

		var physical *bool
		if p := c.Query("physical"); p != "" {
			v, err := strconv.ParseBool(p)
			if err != nil {
				respondError(c, http.StatusBadRequest, "Invalid physical filter")
				return
			}
			physical = &v
		}

		var subs []domain.Subscription
		if ranged {
			subs, err = svc.SubscriptionsByPriceRange(c.Request.Context(), min, max)
		} else {
			subs, err = svc.Subscriptions(c.Request.Context(), physical)
		}
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		if subs == nil {
			subs = []domain.Subscription{}
		}
		respondOK(c, subs)
	}
}

// priceRange parses the optional min_price/max_price pair. A missing bound is
// open: min defaults to 0, max to the largest price.
func priceRange(c *gin.Context) (min, max int64, ranged bool, err error) {
	minStr := c.Query("min_price")
	maxStr := c.Query("max_price")
	if minStr == "" && maxStr == "" {
		return 0, 0, false, nil
	}
	max = int64(math.MaxInt64)
	if minStr != "" {
		if min, err = strconv.ParseInt(minStr, 10, 64); err != nil || min < 0 {
			return 0, 0, false, errInvalidPriceFilter
		}
	}
	if maxStr != "" {
		if max, err = strconv.ParseInt(maxStr, 10, 64); err != nil || max < min {
			return 0, 0, false, errInvalidPriceFilter
		}
	}
	return min, max, true, nil
}

func getSubscriptionHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid subscription id")
			return
		}
		sub, err := svc.SubscriptionByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				respondError(c, http.StatusNotFound, "Subscription not found")
				return
			}
			respondError(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		respondOK(c, sub)
	}
}
