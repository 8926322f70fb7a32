package api

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/CristiGvl/memviz/internal/report"
	"github.com/gofiber/fiber/v2"
)

// length reads the optional bar width from the query string
func (s *Server) length(c *fiber.Ctx) (int, error) {
	raw := c.Query("length")
	if raw == "" {
		return s.defaultLength, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid length %q", raw)
	}
	return n, nil
}

// System memory endpoint
func (s *Server) getSystemMemory(c *fiber.Ctx) error {
	length, err := s.length(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	r := s.builder.System(ctx, length)
	return c.JSON(fiber.Map{
		"report": r,
		"lines":  r.Lines(c.QueryBool("human")),
	})
}

// Program memory endpoint
func (s *Server) getProgramMemory(c *fiber.Ctx) error {
	length, err := s.length(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	program := c.Params("program")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	r, err := s.builder.Process(ctx, program, length)
	if errors.Is(err, report.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": report.NotFoundMessage(program)})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"report": r,
		"lines":  r.Lines(c.QueryBool("human")),
	})
}
