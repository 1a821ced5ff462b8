package api

import (
	"context"
	"errors"
	"time"

	"github.com/astoltz/ohai/internal/cpu"
	"github.com/astoltz/ohai/internal/platform"
	"github.com/gofiber/fiber/v2"
)

// ParseRequest carries pre-captured psrinfo output
type ParseRequest struct {
	Arch  string `json:"arch"`
	Total string `json:"total"`
	Real  string `json:"real"`
	Body  string `json:"body"`
}

// CPU endpoint
func (s *Server) getCPU(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 30*time.Second)
	defer cancel()

	inv, err := s.cpuReader.GetInventory(ctx)
	if err != nil {
		s.log.Error(err, "failed to collect CPU inventory")
		return s.writeError(c, err)
	}

	host := map[string]any{}
	inv.Publish(host)
	return c.JSON(host)
}

// Parse endpoint
func (s *Server) parseCPU(c *fiber.Ctx) error {
	var req ParseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	arch, err := platform.ParseArch(req.Arch)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	format, err := cpu.FormatFor(arch)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	inv, err := cpu.Assemble(cpu.CountsText{Total: req.Total, Real: req.Real}, req.Body, format)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(inv)
}

func (s *Server) writeError(c *fiber.Ctx, err error) error {
	var parseErr *cpu.ParseError
	if errors.As(err, &parseErr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  err.Error(),
			"line":   parseErr.LineNo,
			"reason": parseErr.Reason,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
