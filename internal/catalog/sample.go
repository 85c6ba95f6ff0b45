// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

package catalog

import "github.com/pcdlite/pcdlite/internal/models"

// sampleMovies is the embedded demo catalog, written to disk on first run
// when no catalog file exists.
var sampleMovies = []models.Movie{
	{
		ID:          1,
		Title:       "Forrest Gump",
		Genres:      []string{"Drama", "Comedy", "Romance"},
		Cast:        []string{"Tom Hanks", "Robin Wright", "Gary Sinise"},
		Overview:    "The story of a simple man who unwittingly becomes involved in several historical events.",
		Runtime:     142,
		Popularity:  8.5,
		ReleaseYear: 1994,
		Director:    "Robert Zemeckis",
		Rating:      8.8,
	},
	{
		ID:          2,
		Title:       "The Shawshank Redemption",
		Genres:      []string{"Drama"},
		Cast:        []string{"Tim Robbins", "Morgan Freeman", "Bob Gunton"},
		Overview:    "Two imprisoned men bond over a number of years, finding solace and eventual redemption through acts of common decency.",
		Runtime:     142,
		Popularity:  9.2,
		ReleaseYear: 1994,
		Director:    "Frank Darabont",
		Rating:      9.3,
	},
	{
		ID:          3,
		Title:       "The Godfather",
		Genres:      []string{"Drama", "Crime"},
		Cast:        []string{"Marlon Brando", "Al Pacino", "James Caan"},
		Overview:    "The aging patriarch of an organized crime dynasty transfers control to his reluctant son.",
		Runtime:     175,
		Popularity:  9.0,
		ReleaseYear: 1972,
		Director:    "Francis Ford Coppola",
		Rating:      9.2,
	},
	{
		ID:          4,
		Title:       "Pulp Fiction",
		Genres:      []string{"Crime", "Drama"},
		Cast:        []string{"John Travolta", "Samuel L. Jackson", "Uma Thurman"},
		Overview:    "The lives of two mob hitmen, a boxer, a gangster and his wife intertwine in four tales of violence and redemption.",
		Runtime:     154,
		Popularity:  8.9,
		ReleaseYear: 1994,
		Director:    "Quentin Tarantino",
		Rating:      8.9,
	},
	{
		ID:          5,
		Title:       "The Dark Knight",
		Genres:      []string{"Action", "Crime", "Drama"},
		Cast:        []string{"Christian Bale", "Heath Ledger", "Aaron Eckhart"},
		Overview:    "When the menace known as the Joker wreaks havoc on Gotham, Batman must accept one of the greatest psychological tests.",
		Runtime:     152,
		Popularity:  9.0,
		ReleaseYear: 2008,
		Director:    "Christopher Nolan",
		Rating:      9.0,
	},
	{
		ID:          6,
		Title:       "Schindler's List",
		Genres:      []string{"Drama", "History"},
		Cast:        []string{"Liam Neeson", "Ralph Fiennes", "Ben Kingsley"},
		Overview:    "In German-occupied Poland during World War II, industrialist Oskar Schindler gradually becomes concerned for his Jewish workforce.",
		Runtime:     195,
		Popularity:  8.9,
		ReleaseYear: 1993,
		Director:    "Steven Spielberg",
		Rating:      8.9,
	},
	{
		ID:          7,
		Title:       "The Lord of the Rings: The Return of the King",
		Genres:      []string{"Adventure", "Drama", "Fantasy"},
		Cast:        []string{"Elijah Wood", "Viggo Mortensen", "Ian McKellen"},
		Overview:    "Gandalf and Aragorn lead the World of Men against Sauron's army to draw his gaze from Frodo and Sam.",
		Runtime:     201,
		Popularity:  8.9,
		ReleaseYear: 2003,
		Director:    "Peter Jackson",
		Rating:      8.9,
	},
	{
		ID:          8,
		Title:       "Fight Club",
		Genres:      []string{"Drama"},
		Cast:        []string{"Brad Pitt", "Edward Norton", "Helena Bonham Carter"},
		Overview:    "An insomniac office worker and a devil-may-care soap maker form an underground fight club.",
		Runtime:     139,
		Popularity:  8.8,
		ReleaseYear: 1999,
		Director:    "David Fincher",
		Rating:      8.8,
	},
	{
		ID:          9,
		Title:       "The Matrix",
		Genres:      []string{"Action", "Sci-Fi"},
		Cast:        []string{"Keanu Reeves", "Laurence Fishburne", "Carrie-Anne Moss"},
		Overview:    "A computer hacker learns about the true nature of reality and his role in the war against its controllers.",
		Runtime:     136,
		Popularity:  8.7,
		ReleaseYear: 1999,
		Director:    "Lana Wachowski",
		Rating:      8.7,
	},
	{
		ID:          10,
		Title:       "Goodfellas",
		Genres:      []string{"Biography", "Crime", "Drama"},
		Cast:        []string{"Robert De Niro", "Ray Liotta", "Joe Pesci"},
		Overview:    "The story of Henry Hill and his life in the mob, covering his relationship with his wife Karen Hill.",
		Runtime:     146,
		Popularity:  8.7,
		ReleaseYear: 1990,
		Director:    "Martin Scorsese",
		Rating:      8.7,
	},
	{
		ID:          11,
		Title:       "The Silence of the Lambs",
		Genres:      []string{"Crime", "Drama", "Thriller"},
		Cast:        []string{"Jodie Foster", "Anthony Hopkins", "Scott Glenn"},
		Overview:    "A young F.B.I. cadet must receive the help of an incarcerated and manipulative cannibal killer.",
		Runtime:     118,
		Popularity:  8.6,
		ReleaseYear: 1991,
		Director:    "Jonathan Demme",
		Rating:      8.6,
	},
	{
		ID:          12,
		Title:       "Star Wars: Episode V - The Empire Strikes Back",
		Genres:      []string{"Action", "Adventure", "Fantasy"},
		Cast:        []string{"Mark Hamill", "Harrison Ford", "Carrie Fisher"},
		Overview:    "After the Rebels are brutally overpowered by the Empire on the ice planet Hoth, Luke Skywalker begins Jedi training.",
		Runtime:     124,
		Popularity:  8.7,
		ReleaseYear: 1980,
		Director:    "Irvin Kershner",
		Rating:      8.7,
	},
	{
		ID:          13,
		Title:       "The Lord of the Rings: The Fellowship of the Ring",
		Genres:      []string{"Adventure", "Drama", "Fantasy"},
		Cast:        []string{"Elijah Wood", "Ian McKellen", "Orlando Bloom"},
		Overview:    "A meek Hobbit from the Shire and eight companions set out on a journey to destroy the powerful One Ring.",
		Runtime:     178,
		Popularity:  8.8,
		ReleaseYear: 2001,
		Director:    "Peter Jackson",
		Rating:      8.8,
	},
	{
		ID:          14,
		Title:       "Inception",
		Genres:      []string{"Action", "Sci-Fi", "Thriller"},
		Cast:        []string{"Leonardo DiCaprio", "Marion Cotillard", "Tom Hardy"},
		Overview:    "A thief who steals corporate secrets through dream-sharing technology is given a chance at redemption.",
		Runtime:     148,
		Popularity:  8.8,
		ReleaseYear: 2010,
		Director:    "Christopher Nolan",
		Rating:      8.8,
	},
	{
		ID:          15,
		Title:       "The Lord of the Rings: The Two Towers",
		Genres:      []string{"Adventure", "Drama", "Fantasy"},
		Cast:        []string{"Elijah Wood", "Ian McKellen", "Viggo Mortensen"},
		Overview:    "While Frodo and Sam edge closer to Mordor with the help of the shifty Gollum, the divided fellowship makes a stand.",
		Runtime:     179,
		Popularity:  8.7,
		ReleaseYear: 2002,
		Director:    "Peter Jackson",
		Rating:      8.7,
	},
	{
		ID:          16,
		Title:       "One Flew Over the Cuckoo's Nest",
		Genres:      []string{"Drama"},
		Cast:        []string{"Jack Nicholson", "Louise Fletcher", "Michael Berryman"},
		Overview:    "A criminal pleads insanity and is admitted to a mental institution, where he rebels against the oppressive nurse.",
		Runtime:     133,
		Popularity:  8.7,
		ReleaseYear: 1975,
		Director:    "Milos Forman",
		Rating:      8.7,
	},
	{
		ID:          17,
		Title:       "Good Will Hunting",
		Genres:      []string{"Drama", "Romance"},
		Cast:        []string{"Robin Williams", "Matt Damon", "Ben Affleck"},
		Overview:    "Will Hunting, a janitor at M.I.T., has a gift for mathematics, but needs help from a psychologist.",
		Runtime:     126,
		Popularity:  8.3,
		ReleaseYear: 1997,
		Director:    "Gus Van Sant",
		Rating:      8.3,
	},
	{
		ID:          18,
		Title:       "The Matrix Reloaded",
		Genres:      []string{"Action", "Sci-Fi"},
		Cast:        []string{"Keanu Reeves", "Laurence Fishburne", "Carrie-Anne Moss"},
		Overview:    "Neo and the rebel leaders estimate they have 72 hours until 250,000 machines discover Zion.",
		Runtime:     138,
		Popularity:  7.2,
		ReleaseYear: 2003,
		Director:    "Lana Wachowski",
		Rating:      7.2,
	},
	{
		ID:          19,
		Title:       "The Usual Suspects",
		Genres:      []string{"Crime", "Mystery", "Thriller"},
		Cast:        []string{"Kevin Spacey", "Gabriel Byrne", "Chazz Palminteri"},
		Overview:    "A sole survivor tells of the twisty events leading up to a horrific gun battle on a boat.",
		Runtime:     106,
		Popularity:  8.5,
		ReleaseYear: 1995,
		Director:    "Bryan Singer",
		Rating:      8.5,
	},
	{
		ID:          20,
		Title:       "Se7en",
		Genres:      []string{"Crime", "Drama", "Mystery"},
		Cast:        []string{"Morgan Freeman", "Brad Pitt", "Kevin Spacey"},
		Overview:    "Two detectives, a rookie and a veteran, hunt a serial killer who uses the seven deadly sins as his motives.",
		Runtime:     127,
		Popularity:  8.6,
		ReleaseYear: 1995,
		Director:    "David Fincher",
		Rating:      8.6,
	},
}
