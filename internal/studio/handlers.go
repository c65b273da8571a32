package studio

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rana718/tablefill/internal/seeder"
	"github.com/gofiber/fiber/v2"
)

func (s *Server) handleIndex(c *fiber.Ctx) error {
	return c.Render("templates/index", fiber.Map{
		"Title":          "tablefill",
		"DefaultRecords": defaultNumRecords,
		"MaxRecords":     s.service.MaxRecords(),
	})
}

func (s *Server) handleGenerateData(c *fiber.Ctx) error {
	var req GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.TableName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "table_name is required"})
	}

	n := numRecords(req.NumRecords)
	if err := s.checkCount(n); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	res, err := s.service.Generate(ctx, req.TableName, n)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Inserted %d records into %s.", res.Inserted, req.TableName),
	})
}

func (s *Server) handleGetTables(c *fiber.Ctx) error {
	ctx, cancel := s.requestContext(c)
	defer cancel()

	tables, err := s.service.GetTables(ctx)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"tables": tables})
}

func (s *Server) handleGetSchema(c *fiber.Ctx) error {
	ctx, cancel := s.requestContext(c)
	defer cancel()

	view, err := s.service.DescribeTable(ctx, c.Params("name"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(view)
}

func (s *Server) handlePreview(c *fiber.Ctx) error {
	var req PreviewRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
	}

	n := numRecords(req.NumRecords)
	if err := s.checkCount(n); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	batch, err := s.service.Preview(ctx, c.Params("name"), n)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(batch)
}

func (s *Server) checkCount(n int) error {
	if n < 1 {
		return fmt.Errorf("num_records must be at least 1, got %d", n)
	}
	if limit := s.service.MaxRecords(); limit > 0 && n > limit {
		return fmt.Errorf("num_records must be at most %d, got %d", limit, n)
	}
	return nil
}

func (s *Server) requestContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), s.timeout)
}

// writeError maps seeder error categories onto status codes.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, seeder.ErrSchemaLookup):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, seeder.ErrGeneration):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal Server Error",
			"details": err.Error(),
		})
	}
}
