package projections

import (
	"context"
	"net/url"

	"ironcore/internal/adapters/storage/user"
	"ironcore/internal/application/listutil"
	domainUser "ironcore/internal/domain/user"
)

// UserStatusFilter is the query parameter carrying the status filter.
const UserStatusFilter = "status"

// ParseUserListParams reads the users table query string.
func ParseUserListParams(q url.Values) listutil.ListParams {
	p := listutil.ParseListParams(q, user.SortColumns, "asc", []string{UserStatusFilter})
	if s := p.Filters[UserStatusFilter]; s != domainUser.StatusActive && s != domainUser.StatusBlocked {
		delete(p.Filters, UserStatusFilter)
	}
	return p
}

// GetUserListQuery carries query parameters.
type GetUserListQuery struct {
	Params listutil.ListParams
}

// GetUserListResult carries the query result.
type GetUserListResult struct {
	Users  []domainUser.User
	Page   listutil.PageInfo
	Params listutil.ListParams
	Roles  []string
}

// GetUserListDeps holds dependencies for GetUserList.
type GetUserListDeps struct {
	UserStore UserStore
}

// QueryGetUserList retrieves one page of users for the admin table.
// PRE: query.Params came from ParseUserListParams
// POST: Page.Total counts every match on name or email
func QueryGetUserList(ctx context.Context, query GetUserListQuery, deps GetUserListDeps) (GetUserListResult, error) {
	filter := user.ListFilter{
		Search: query.Params.Search,
		Status: query.Params.Filters[UserStatusFilter],
		Sort:   query.Params.Sort,
		Desc:   query.Params.Desc(),
	}

	total, err := deps.UserStore.Count(ctx, filter)
	if err != nil {
		return GetUserListResult{}, err
	}
	page := listutil.NewPageInfo(query.Params.Page, query.Params.PerPage, total)

	filter.Limit = page.PerPage
	filter.Offset = page.Offset()
	rows, err := deps.UserStore.List(ctx, filter)
	if err != nil {
		return GetUserListResult{}, err
	}

	params := query.Params
	params.Page = page.Page
	return GetUserListResult{
		Users:  rows,
		Page:   page,
		Params: params,
		Roles:  domainUser.ValidRoles,
	}, nil
}
