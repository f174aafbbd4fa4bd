package api

import (
	"errors"
	"net/http"

	"github.com/banachtech/amerput/mainfuncs"
	"github.com/gin-gonic/gin"
)

type pricerRequest struct {
	Sigma        float64 `json:"sigma" binding:"required,gt=0"`
	Rate         float64 `json:"rate"`
	Strike       float64 `json:"strike" binding:"required,gt=0"`
	Spot         float64 `json:"spot" binding:"required,gt=0"`
	Maturity     float64 `json:"maturity" binding:"required,gt=0"`
	Steps        int     `json:"steps" binding:"required,min=1"`
	Order        int     `json:"order" binding:"required,min=2"`
	Paths        int     `json:"paths" binding:"required,min=1"`
	Seed         uint64  `json:"seed"`
	ITMOnly      bool    `json:"itm_only"`
	FallbackHold bool    `json:"fallback_hold"`
}

func (server *Server) pricer(c *gin.Context) {
	var req pricerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	res, err := mainfuncs.Pricer(mainfuncs.Params{
		Sigma:        req.Sigma,
		Rate:         req.Rate,
		Strike:       req.Strike,
		Spot:         req.Spot,
		Maturity:     req.Maturity,
		Steps:        req.Steps,
		Order:        req.Order,
		Paths:        req.Paths,
		Seed:         req.Seed,
		ITMOnly:      req.ITMOnly,
		FallbackHold: req.FallbackHold,
	})
	if err != nil {
		server.logger.Error().Err(err).Msg("pricing run failed")
		var pe mainfuncs.ParamError
		if errors.As(err, &pe) {
			c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
			return
		}
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"contract":  req,
		"price":     res.Price,
		"std_error": res.StdErr,
		"european":  res.European,
	})
}
