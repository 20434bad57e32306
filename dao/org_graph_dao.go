// dao/org_graph_dao.go
package dao

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	echo_errors "github.com/923325596/albedo-boot/errors"
	logger "github.com/923325596/albedo-boot/logging"
	"github.com/923325596/albedo-boot/model"
)

// OrgGraph mirrors the org tree for hierarchy queries.
type OrgGraph interface {
	Upsert(ctx context.Context, org model.Org) error
	Delete(ctx context.Context, ids []string) error
	DescendantIDs(ctx context.Context, id string) ([]string, error)
}

const labelOrg = "Org"

// OrgGraphDAO keeps one :Org node per org linked to its parent by BELONGS_TO.
type OrgGraphDAO struct {
	Driver neo4j.Driver
}

var _ OrgGraph = &OrgGraphDAO{}

func NewOrgGraphDAO(driver neo4j.Driver) *OrgGraphDAO {
	dao := &OrgGraphDAO{Driver: driver}
	if err := dao.EnsureUniqueConstraint(context.Background()); err != nil {
		logger.Fatal("Failed to ensure unique constraint for Org", zap.Error(err))
	}
	return dao
}

func (dao *OrgGraphDAO) EnsureUniqueConstraint(ctx context.Context) error {
	logger.Info("Ensuring unique constraint on Org ID")
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        CREATE CONSTRAINT unique_org_id IF NOT EXISTS
        FOR (o:` + labelOrg + `) REQUIRE o.id IS UNIQUE
        `
		_, err := transaction.Run(query, nil)
		return nil, err
	})
	if err != nil {
		logger.Error("Failed to ensure unique constraint on Org ID", zap.Error(err))
		return err
	}
	return nil
}

// Upsert writes the node and re-links it under its current parent.
func (dao *OrgGraphDAO) Upsert(ctx context.Context, org model.Org) error {
	start := time.Now()
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MERGE (o:` + labelOrg + ` {id: $id})
        SET o.name = $name, o.code = $code, o.status = $status
        WITH o
        OPTIONAL MATCH (o)-[r:BELONGS_TO]->(:` + labelOrg + `)
        DELETE r
        WITH o
        OPTIONAL MATCH (p:` + labelOrg + ` {id: $parentId})
        FOREACH (_ IN CASE WHEN p IS NULL THEN [] ELSE [1] END | MERGE (o)-[:BELONGS_TO]->(p))
        RETURN o.id
        `
		params := map[string]interface{}{
			"id":       org.ID,
			"name":     org.Name,
			"code":     org.Code,
			"status":   org.Status,
			"parentId": org.ParentID,
		}
		result, err := transaction.Run(query, params)
		if err != nil {
			return nil, err
		}
		if !result.Next() {
			return nil, echo_errors.ErrOrgNotFound
		}
		return nil, nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to mirror org",
			zap.Error(err),
			zap.String("orgID", org.ID),
			zap.Duration("duration", duration))
		return fmt.Errorf("%w: mirror org %s: %v", echo_errors.ErrDatabaseOperation, org.ID, err)
	}
	logger.Debug("Org mirrored", zap.String("orgID", org.ID), zap.Duration("duration", duration))
	return nil
}

func (dao *OrgGraphDAO) Delete(ctx context.Context, ids []string) error {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `MATCH (o:` + labelOrg + `) WHERE o.id IN $ids DETACH DELETE o`
		_, err := transaction.Run(query, map[string]interface{}{"ids": ids})
		return nil, err
	})
	if err != nil {
		logger.Error("Failed to delete mirrored orgs", zap.Error(err), zap.Strings("ids", ids))
		return fmt.Errorf("%w: delete org nodes: %v", echo_errors.ErrDatabaseOperation, err)
	}
	return nil
}

// DescendantIDs returns the ids below id at any depth, id itself excluded.
func (dao *OrgGraphDAO) DescendantIDs(ctx context.Context, id string) ([]string, error) {
	start := time.Now()
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (d:` + labelOrg + `)-[:BELONGS_TO*1..]->(:` + labelOrg + ` {id: $id})
        RETURN DISTINCT d.id
        `
		records, err := transaction.Run(query, map[string]interface{}{"id": id})
		if err != nil {
			return nil, err
		}
		var ids []string
		for records.Next() {
			if v, ok := records.Record().Values[0].(string); ok {
				ids = append(ids, v)
			}
		}
		return ids, records.Err()
	})
	if err != nil {
		logger.Error("Failed to query org descendants",
			zap.Error(err),
			zap.String("orgID", id),
			zap.Duration("duration", time.Since(start)))
		return nil, fmt.Errorf("%w: org descendants: %v", echo_errors.ErrDatabaseOperation, err)
	}

	ids, _ := result.([]string)
	logger.Debug("Org descendants retrieved",
		zap.String("orgID", id),
		zap.Int("count", len(ids)),
		zap.Duration("duration", time.Since(start)))
	return ids, nil
}
