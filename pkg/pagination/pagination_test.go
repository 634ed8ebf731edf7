package pagination_test

import (
	"math"
	"net/http/httptest"
	"strconv"
	"testing"

	"autoservice/pkg/pagination"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		page, limit int
		want        pagination.Params
	}{
		{"defaults on zero", 0, 0, pagination.Params{Page: 1, Limit: 20, Offset: 0}},
		{"third page", 3, 10, pagination.Params{Page: 3, Limit: 10, Offset: 20}},
		{"limit capped", 2, 1000, pagination.Params{Page: 2, Limit: 100, Offset: 100}},
		{"negative page", -4, 5, pagination.Params{Page: 1, Limit: 5, Offset: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pagination.New(tt.page, tt.limit))
		})
	}
}

func TestNew_HugePageDoesNotOverflow(t *testing.T) {
	for _, limit := range []int{1, 7, 20, 100} {
		p := pagination.New(math.MaxInt, limit)
		assert.Equal(t, pagination.MaxPage(limit), p.Page)
		assert.GreaterOrEqual(t, p.Offset, 0)
		assert.LessOrEqual(t, p.Offset, math.MaxInt-limit)
	}

	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/clients?pageSize=100&currentPage="+strconv.Itoa(math.MaxInt), nil)
	p := pagination.Parse(c)
	assert.GreaterOrEqual(t, p.Offset, 0)
}

func TestParse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/clients?pageSize=15&currentPage=4", nil)

	p := pagination.Parse(c)
	assert.Equal(t, pagination.Params{Page: 4, Limit: 15, Offset: 45}, p)
}
