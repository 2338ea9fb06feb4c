package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/omnipos-commerce/internal/category"
	"github.com/fekuna/omnipos-commerce/internal/category/dto"
	"github.com/fekuna/omnipos-commerce/internal/model"
	"github.com/fekuna/omnipos-commerce/pkg/apperror"
	"github.com/fekuna/omnipos-commerce/pkg/logger"
	"github.com/fekuna/omnipos-commerce/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type categoryUseCase struct {
	repo   category.Repository
	logger logger.ZapLogger
}

func NewCategoryUseCase(repo category.Repository, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	parentID := normalizeID(input.ParentID)
	if parentID != nil {
		if _, err := uc.mustFind(ctx, *parentID, "Parent category not found"); err != nil {
			return nil, err
		}
	}

	slug := utils.GenerateSlug(input.Name)
	if slug == "" {
		return nil, apperror.Validation("Validation failed: name must contain letters or digits")
	}

	now := time.Now()
	cat := &model.Category{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ParentID:    parentID,
		Name:        strings.TrimSpace(input.Name),
		Slug:        slug,
		Description: optional(input.Description),
		ImageURL:    optional(input.ImageURL),
		SortOrder:   input.SortOrder,
		IsActive:    true,
	}

	if err := uc.repo.Create(ctx, cat); err != nil {
		return nil, err
	}

	uc.logger.Info("category created", zap.String("id", cat.ID), zap.String("slug", cat.Slug))
	return cat, nil
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	return uc.mustFind(ctx, id, "Category not found")
}

func (uc *categoryUseCase) ListCategories(ctx context.Context, filters *dto.CategoryFilters) ([]model.Category, int, error) {
	if !filters.Tree {
		return uc.repo.FindAll(ctx, filters)
	}

	// The tree needs every node, so paging and parent filters do not apply.
	all, _, err := uc.repo.FindAll(ctx, &dto.CategoryFilters{IsActive: filters.IsActive})
	if err != nil {
		return nil, 0, err
	}
	roots := BuildTree(all)
	return roots, len(roots), nil
}

// BuildTree nests categories under their parents. Categories whose parent is
// not in the list are treated as roots. Input order is preserved per level.
func BuildTree(categories []model.Category) []model.Category {
	byParent := make(map[string][]int, len(categories))
	present := make(map[string]bool, len(categories))
	for _, c := range categories {
		present[c.ID] = true
	}

	var roots []int
	for i, c := range categories {
		if c.ParentID == nil || !present[*c.ParentID] || *c.ParentID == c.ID {
			roots = append(roots, i)
			continue
		}
		byParent[*c.ParentID] = append(byParent[*c.ParentID], i)
	}

	visited := make(map[string]bool, len(categories))
	var build func(i int) model.Category
	build = func(i int) model.Category {
		node := categories[i]
		visited[node.ID] = true
		node.Children = nil
		for _, child := range byParent[node.ID] {
			if visited[categories[child].ID] {
				continue
			}
			node.Children = append(node.Children, build(child))
		}
		return node
	}

	tree := make([]model.Category, 0, len(roots))
	for _, i := range roots {
		tree = append(tree, build(i))
	}
	return tree
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error) {
	cat, err := uc.mustFind(ctx, input.ID, "Category not found")
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		slug := utils.GenerateSlug(name)
		if slug == "" {
			return nil, apperror.Validation("Validation failed: name must contain letters or digits")
		}
		cat.Name = name
		cat.Slug = slug
	}
	if input.Description != nil {
		cat.Description = optional(*input.Description)
	}
	if input.ImageURL != nil {
		cat.ImageURL = optional(*input.ImageURL)
	}
	if input.SortOrder != nil {
		cat.SortOrder = *input.SortOrder
	}
	if input.IsActive != nil {
		cat.IsActive = *input.IsActive
	}
	if input.ParentID != nil {
		parentID := normalizeID(input.ParentID)
		if parentID != nil {
			if err := uc.checkParent(ctx, cat.ID, *parentID); err != nil {
				return nil, err
			}
		}
		cat.ParentID = parentID
	}
	cat.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// checkParent rejects parents that would put id inside its own subtree.
func (uc *categoryUseCase) checkParent(ctx context.Context, id, parentID string) error {
	seen := map[string]bool{}
	current := parentID
	for current != "" {
		if current == id {
			return apperror.BadRequest("A category cannot be moved below itself")
		}
		if seen[current] {
			break
		}
		seen[current] = true

		parent, err := uc.mustFind(ctx, current, "Parent category not found")
		if err != nil {
			return err
		}
		if parent.ParentID == nil {
			break
		}
		current = *parent.ParentID
	}
	return nil
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id string) error {
	if _, err := uc.mustFind(ctx, id, "Category not found"); err != nil {
		return err
	}

	children, err := uc.repo.CountChildren(ctx, id)
	if err != nil {
		return err
	}
	if children > 0 {
		return apperror.Conflict("Category has sub-categories and cannot be deleted")
	}
	products, err := uc.repo.CountProducts(ctx, id)
	if err != nil {
		return err
	}
	if products > 0 {
		return apperror.Conflict("Category has products and cannot be deleted")
	}

	return uc.repo.Delete(ctx, id)
}

func (uc *categoryUseCase) mustFind(ctx context.Context, id, notFound string) (*model.Category, error) {
	cat, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, apperror.NotFound(notFound)
	}
	return cat, nil
}

func normalizeID(id *string) *string {
	if id == nil || strings.TrimSpace(*id) == "" {
		return nil
	}
	v := strings.TrimSpace(*id)
	return &v
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
