package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type turfSearchRow struct {
	ID       uint    `json:"id"`
	TurfName string  `json:"turfName"`
	Location string  `json:"location"`
	Price    float64 `json:"price"`
	Ratings  float64 `json:"ratings"`
}

type rentalSearchRow struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

func paginationParams(c *gin.Context) (int, int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

func priceRange(c *gin.Context) (float64, float64, error) {
	min, max := 0.0, 1e12
	if v := c.Query("minPrice"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid minPrice")
		}
		min = parsed
	}
	if v := c.Query("maxPrice"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid maxPrice")
		}
		max = parsed
	}
	return min, max, nil
}

// SearchTurfs combines fuzzy text matching (pg_trgm % operator with an ILIKE
// substring fallback), price range and day-availability filters over turf
// listings. Fuzzy matches rank by trigram similarity.
func SearchTurfs(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("query")
		limit, offset := paginationParams(c)

		minPrice, maxPrice, err := priceRange(c)
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		where := []string{`available = true`, `price_per_person BETWEEN ? AND ?`}
		args := []interface{}{minPrice, maxPrice}

		if query != "" {
			where = append(where,
				`(turf_name % ? OR turf_location % ? OR turf_name ILIKE '%' || ? || '%' OR turf_location ILIKE '%' || ? || '%')`)
			args = append(args, query, query, query, query)
		}

		if day := c.Query("day"); day != "" {
			where = append(where, `availability_slots @> ?`)
			args = append(args, fmt.Sprintf(`[{"day":%q}]`, strings.ToUpper(day)))
		}

		whereClause := strings.Join(where, " AND ")

		var total int64
		countSQL := `SELECT COUNT(*) FROM turf_owners WHERE deleted_at IS NULL AND ` + whereClause
		if err := db.Raw(countSQL, args...).Scan(&total).Error; err != nil {
			c.JSON(500, gin.H{"error": "Search failed", "details": err.Error()})
			return
		}
		if total == 0 {
			c.JSON(404, gin.H{"message": "No turfs found"})
			return
		}

		orderBy := `price_per_person ASC`
		selectArgs := args
		if query != "" {
			orderBy = `GREATEST(SIMILARITY(turf_name, ?), SIMILARITY(turf_location, ?)) DESC`
			selectArgs = append(append([]interface{}{}, args...), query, query)
		}

		selectSQL := fmt.Sprintf(
			`SELECT id, turf_name, turf_location AS location, price_per_person AS price, ratings
			 FROM turf_owners WHERE deleted_at IS NULL AND %s ORDER BY %s LIMIT %d OFFSET %d`,
			whereClause, orderBy, limit, offset)

		var results []turfSearchRow
		if err := db.Raw(selectSQL, selectArgs...).Scan(&results).Error; err != nil {
			c.JSON(500, gin.H{"error": "Search failed", "details": err.Error()})
			return
		}

		c.JSON(200, gin.H{"total": total, "data": results})
	}
}

// SearchRentals is the rental-listing counterpart of SearchTurfs: fuzzy name
// match plus price range over available equipment.
func SearchRentals(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("query")
		limit, offset := paginationParams(c)

		minPrice, maxPrice, err := priceRange(c)
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		where := []string{`is_available = true`, `price_per_hour BETWEEN ? AND ?`}
		args := []interface{}{minPrice, maxPrice}

		if query != "" {
			where = append(where, `(name % ? OR name ILIKE '%' || ? || '%')`)
			args = append(args, query, query)
		}

		whereClause := strings.Join(where, " AND ")

		var total int64
		countSQL := `SELECT COUNT(*) FROM sports_amenities WHERE deleted_at IS NULL AND ` + whereClause
		if err := db.Raw(countSQL, args...).Scan(&total).Error; err != nil {
			c.JSON(500, gin.H{"error": "Search failed", "details": err.Error()})
			return
		}
		if total == 0 {
			c.JSON(404, gin.H{"message": "No matching rentals found"})
			return
		}

		orderBy := `price_per_hour ASC`
		selectArgs := args
		if query != "" {
			orderBy = `SIMILARITY(name, ?) DESC`
			selectArgs = append(append([]interface{}{}, args...), query)
		}

		selectSQL := fmt.Sprintf(
			`SELECT id, name, price_per_hour AS price, quantity
			 FROM sports_amenities WHERE deleted_at IS NULL AND %s ORDER BY %s LIMIT %d OFFSET %d`,
			whereClause, orderBy, limit, offset)

		var results []rentalSearchRow
		if err := db.Raw(selectSQL, selectArgs...).Scan(&results).Error; err != nil {
			c.JSON(500, gin.H{"error": "Search failed", "details": err.Error()})
			return
		}

		c.JSON(200, gin.H{"total": total, "data": results})
	}
}
