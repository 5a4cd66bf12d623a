package server

import (
	"context"

	"github.com/siddharthpandey07/UserManage/internal/models"
	"github.com/siddharthpandey07/UserManage/internal/server/repository"
)

// seed loads the fixture users when the table is empty, so a fresh dev
// server always has something to list. A non-empty database is left alone.
func seed(ctx context.Context, repo repository.UserRepository) error {
	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, u := range fixtureUsers {
		u := u
		if err := repo.Create(ctx, &u); err != nil {
			return err
		}
	}
	return nil
}

var fixtureUsers = []models.User{
	{
		Name: "Leanne Graham", Username: "Bret", Email: "Sincere@april.biz",
		Phone: "1-770-736-8031", Website: "hildegard.org",
		Address: models.Address{Street: "Kulas Light", City: "Gwenborough"},
		Company: models.Company{Name: "Romaguera-Crona"},
	},
	{
		Name: "Ervin Howell", Username: "Antonette", Email: "Shanna@melissa.tv",
		Phone: "010-692-6593", Website: "anastasia.net",
		Address: models.Address{Street: "Victor Plains", City: "Wisokyburgh"},
		Company: models.Company{Name: "Deckow-Crist"},
	},
	{
		Name: "Clementine Bauch", Username: "Samantha", Email: "Nathan@yesenia.net",
		Phone: "1-463-123-4447", Website: "ramiro.info",
		Address: models.Address{Street: "Douglas Extension", City: "McKenziehaven"},
		Company: models.Company{Name: "Romaguera-Jacobson"},
	},
	{
		Name: "Patricia Lebsack", Username: "Karianne", Email: "Julianne.OConner@kory.org",
		Phone: "493-170-9623", Website: "kale.biz",
		Address: models.Address{Street: "Hoeger Mall", City: "South Elvis"},
		Company: models.Company{Name: "Robel-Corkery"},
	},
	{
		Name: "Chelsey Dietrich", Username: "Kamren", Email: "Lucio_Hettinger@annie.ca",
		Phone: "(254)954-1289", Website: "demarco.info",
		Address: models.Address{Street: "Skiles Walks", City: "Roscoeview"},
		Company: models.Company{Name: "Keebler LLC"},
	},
	{
		Name: "Dennis Schulist", Username: "Leopoldo_Corkery", Email: "Karley_Dach@jasper.info",
		Phone: "1-477-935-8478", Website: "ola.org",
		Address: models.Address{Street: "Norberto Crossing", City: "South Christy"},
		Company: models.Company{Name: "Considine-Lockman"},
	},
	{
		Name: "Kurtis Weissnat", Username: "Elwyn.Skiles", Email: "Telly.Hoeger@billy.biz",
		Phone: "210.067.6132", Website: "elvis.io",
		Address: models.Address{Street: "Rex Trail", City: "Howemouth"},
		Company: models.Company{Name: "Johns Group"},
	},
	{
		Name: "Nicholas Runolfsdottir V", Username: "Maxime_Nienow", Email: "Sherwood@rosamond.me",
		Phone: "586.493.6943", Website: "jacynthe.com",
		Address: models.Address{Street: "Ellsworth Summit", City: "Aliyaview"},
		Company: models.Company{Name: "Abernathy Group"},
	},
	{
		Name: "Glenna Reichert", Username: "Delphine", Email: "Chaim_McDermott@dana.io",
		Phone: "(775)976-6794", Website: "conrad.com",
		Address: models.Address{Street: "Dayna Park", City: "Bartholomebury"},
		Company: models.Company{Name: "Yost and Sons"},
	},
	{
		Name: "Clementina DuBuque", Username: "Moriah.Stanton", Email: "Rey.Padberg@karina.biz",
		Phone: "024-648-3804", Website: "ambrose.net",
		Address: models.Address{Street: "Kattie Turnpike", City: "Lebsackbury"},
		Company: models.Company{Name: "Hoeger LLC"},
	},
}
