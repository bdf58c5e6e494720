package queries

const MaxListLimit = 200
