package repository

import (
	"errors"
	"strings"

	"github.com/dujiao-next/bistro/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductRepository 菜单商品数据访问接口
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, int64, error)
	GetByID(id string, onlyActive bool) (*models.Product, error)
	Upsert(product *models.Product) error
	Delete(id string) error
	Count() (int64, error)
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// List 商品列表
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, int64, error) {
	var products []models.Product

	query := r.db.Model(&models.Product{})
	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("sort_order DESC, id ASC").Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// GetByID 根据标识获取商品，不存在时返回 nil
func (r *GormProductRepository) GetByID(id string, onlyActive bool) (*models.Product, error) {
	var product models.Product
	query := r.db.Where("id = ?", strings.TrimSpace(id))
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// Upsert 按标识写入商品，已存在时整体覆盖
func (r *GormProductRepository) Upsert(product *models.Product) error {
	if product == nil {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(product).Error
}

// Delete 软删除商品
func (r *GormProductRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Product{}).Error
}

// Count 商品总数
func (r *GormProductRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Product{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
