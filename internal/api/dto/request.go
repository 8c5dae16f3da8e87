package dto

import "mf-api/internal/models"

// Users

type CreateUserReq struct {
	Name        string  `json:"name" binding:"required,min=1,max=200"`
	Email       string  `json:"email" binding:"required,email"`
	Picture     *string `json:"picture" binding:"omitempty,url"`
	PhoneNumber *string `json:"phoneNumber" binding:"omitempty,max=20"`
}

// UpdateUserReq sets only the fields sent; picture and phoneNumber may be
// sent as null to clear them.
type UpdateUserReq struct {
	Name        *string               `json:"name" binding:"omitempty,min=1,max=200"`
	Email       *string               `json:"email" binding:"omitempty,email"`
	Picture     models.OptionalString `json:"picture" binding:"omitempty,url"`
	PhoneNumber models.OptionalString `json:"phoneNumber" binding:"omitempty,max=20"`
}

func (r UpdateUserReq) ToModel() models.UserUpdate {
	return models.UserUpdate{
		Name:        r.Name,
		Email:       r.Email,
		Picture:     r.Picture,
		PhoneNumber: r.PhoneNumber,
	}
}

// Favorites

type AddFavoriteReq struct {
	UserID   string `json:"userId" binding:"required,min=1"`
	ItemID   string `json:"itemId" binding:"required,min=1"`
	ItemType string `json:"itemType" binding:"required,oneof=stock fund"`
	ItemName string `json:"itemName" binding:"max=500"`
}

func (r AddFavoriteReq) ToModel() models.Favorite {
	return models.Favorite{
		UserID:   r.UserID,
		ItemID:   r.ItemID,
		ItemType: r.ItemType,
		ItemName: r.ItemName,
	}
}

type RemoveFavoriteReq struct {
	UserID   string `json:"userId" binding:"required,min=1"`
	ItemID   string `json:"itemId" binding:"required,min=1"`
	ItemType string `json:"itemType" binding:"required,oneof=stock fund"`
}

func (r RemoveFavoriteReq) ToKey() models.FavoriteKey {
	return models.FavoriteKey{UserID: r.UserID, ItemID: r.ItemID, ItemType: r.ItemType}
}

// Listing queries

type FundListQuery struct {
	Skip   int64  `form:"skip,default=0" binding:"min=0"`
	Limit  int64  `form:"limit,default=50" binding:"min=1,max=1000"`
	SortBy string `form:"sort_by,default=holding_count" binding:"oneof=_id name holding_count added_count removed_count latest_date"`
	Order  string `form:"order,default=desc" binding:"oneof=asc desc"`
	Date   string `form:"date"`
}

type StockListQuery struct {
	Skip   int64  `form:"skip,default=0" binding:"min=0"`
	Limit  int64  `form:"limit,default=50" binding:"min=1,max=1000"`
	SortBy string `form:"sort_by,default=name" binding:"min=1,max=64,excludesall=$"`
	Order  string `form:"order,default=asc" binding:"oneof=asc desc"`
	Search string `form:"search" binding:"max=200"`
}

// Favorites listing

type FavoriteItem struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type FavoritesRes struct {
	Stocks []FavoriteItem `json:"stocks"`
	Funds  []FavoriteItem `json:"funds"`
}

// GroupFavorites splits favorites into stocks and funds, keeping order.
func GroupFavorites(favs []models.Favorite) FavoritesRes {
	res := FavoritesRes{Stocks: []FavoriteItem{}, Funds: []FavoriteItem{}}
	for _, f := range favs {
		item := FavoriteItem{Id: f.ItemID, Name: f.ItemName}
		if f.ItemType == models.ItemTypeStock {
			res.Stocks = append(res.Stocks, item)
		} else {
			res.Funds = append(res.Funds, item)
		}
	}
	return res
}
