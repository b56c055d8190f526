// Package statusapi is a thin read-only JSON status reporter over the
// Coordinator's state, grounded on the teacher's reporter/http_server.go
// gin wiring.
package statusapi

import (
	"net/http"

	"github.com/TEENet-io/atomicswap-core/coordinator"
	"github.com/TEENet-io/atomicswap-core/coordinatormetrics"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

const (
	RouteHello        = "/hello"
	RouteSecretStatus = "/secret"
	RouteMetrics      = "/metrics"
)

// Server exposes read-only coordination state over HTTP.
type Server struct {
	serverIP   string
	serverPort string

	coord   *coordinator.Coordinator
	metrics *coordinatormetrics.Registry
}

func NewServer(serverIP, serverPort string, coord *coordinator.Coordinator, metrics *coordinatormetrics.Registry) *Server {
	return &Server{serverIP: serverIP, serverPort: serverPort, coord: coord, metrics: metrics}
}

func (s *Server) SetupRouter() *gin.Engine {
	router := gin.Default()

	router.GET(RouteHello, Hello)
	router.GET(RouteSecretStatus, s.SecretStatus)
	if s.metrics != nil {
		router.GET(RouteMetrics, gin.WrapH(s.metrics.Handler()))
	}

	return router
}

func (s *Server) Run() {
	router := s.SetupRouter()
	address := s.serverIP + ":" + s.serverPort
	if err := router.Run(address); err != nil {
		panic(err)
	}
}

func Hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "world"})
}

// SecretStatus looks up a coordination entry by foreign escrow id,
// passed as the ?foreign_escrow_id= query parameter.
func (s *Server) SecretStatus(c *gin.Context) {
	foreignEscrowIdHex := c.Query("foreign_escrow_id")
	if foreignEscrowIdHex == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "foreign_escrow_id must be provided"})
		return
	}

	foreignEscrowId := ethcommon.HexToHash(foreignEscrowIdHex)
	entry, ok, err := s.coord.GetCoordinatedSecret(foreignEscrowId)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no coordination entry for foreign_escrow_id"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"foreign_escrow_id": foreignEscrowIdHex,
		"status":            entry.Status,
		"consumed":          entry.Consumed,
		"coordinated_at":    entry.CoordinatedAt,
	})
}
